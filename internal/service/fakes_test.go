package service

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
)

// In-memory fakes for the store contracts.

type fakeUserStore struct {
	nextID uint
	users  map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(user *models.User) error {
	if _, ok := f.users[user.Name]; ok {
		return errors.Wrap(apperrors.ErrConflict, "username already taken")
	}
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.Name] = &copied
	return nil
}

func (f *fakeUserStore) GetByName(name string) (*models.User, error) {
	user, ok := f.users[name]
	if !ok {
		return nil, errors.Wrap(apperrors.ErrNotFound, "user not found")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.Wrap(apperrors.ErrNotFound, "user not found")
}

func (f *fakeUserStore) UpdatePasswordHash(userID uint, hash string) error {
	for _, user := range f.users {
		if user.ID == userID {
			user.PasswordHash = hash
			return nil
		}
	}
	return errors.Wrap(apperrors.ErrNotFound, "user not found")
}

type fakeLocationStore struct {
	locations []models.Location
}

func (f *fakeLocationStore) Search(query string) ([]models.Location, error) {
	var matched []models.Location
	for _, loc := range f.locations {
		if containsFold(loc.Zipcode, query) || containsFold(loc.City, query) {
			matched = append(matched, loc)
		}
	}
	return matched, nil
}

func (f *fakeLocationStore) GetByID(id uint) (*models.Location, error) {
	for _, loc := range f.locations {
		if loc.ID == id {
			copied := loc
			return &copied, nil
		}
	}
	return nil, errors.Wrap(apperrors.ErrNotFound, "location not found")
}

func (f *fakeLocationStore) GetByZipcode(zipcode string) (*models.Location, error) {
	for _, loc := range f.locations {
		if loc.Zipcode == zipcode {
			copied := loc
			return &copied, nil
		}
	}
	return nil, errors.Wrap(apperrors.ErrNotFound, "location not found")
}

type fakeCheckinStore struct {
	nextID   uint
	checkins map[uint]*models.Checkin
	names    map[uint]string
}

func newFakeCheckinStore() *fakeCheckinStore {
	return &fakeCheckinStore{
		checkins: map[uint]*models.Checkin{},
		names:    map[uint]string{},
	}
}

func (f *fakeCheckinStore) Create(checkin *models.Checkin) error {
	f.nextID++
	checkin.ID = f.nextID
	checkin.CreatedAt = time.Now() // the real store assigns this at insert
	copied := *checkin
	f.checkins[checkin.ID] = &copied
	return nil
}

func (f *fakeCheckinStore) GetByID(id uint) (*models.Checkin, error) {
	checkin, ok := f.checkins[id]
	if !ok {
		return nil, errors.Wrap(apperrors.ErrNotFound, "checkin not found")
	}
	copied := *checkin
	return &copied, nil
}

func (f *fakeCheckinStore) ListForLocation(locationID uint) ([]models.CheckinWithUser, error) {
	var out []models.CheckinWithUser
	for _, c := range f.checkins {
		if c.LocationID == locationID {
			out = append(out, f.withUser(c))
		}
	}
	return out, nil
}

func (f *fakeCheckinStore) ListForUserName(userName string) ([]models.CheckinWithUser, error) {
	var out []models.CheckinWithUser
	for _, c := range f.checkins {
		if f.names[c.UserID] == userName {
			out = append(out, f.withUser(c))
		}
	}
	return out, nil
}

func (f *fakeCheckinStore) Delete(id uint) error {
	delete(f.checkins, id)
	return nil
}

func (f *fakeCheckinStore) withUser(c *models.Checkin) models.CheckinWithUser {
	return models.CheckinWithUser{
		ID:         c.ID,
		UserID:     c.UserID,
		UserName:   f.names[c.UserID],
		LocationID: c.LocationID,
		Comment:    c.Comment,
		CreatedAt:  c.CreatedAt,
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
