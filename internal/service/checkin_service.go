package service

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
)

// CheckinStore persists check-ins.
type CheckinStore interface {
	Create(checkin *models.Checkin) error
	GetByID(id uint) (*models.Checkin, error)
	ListForLocation(locationID uint) ([]models.CheckinWithUser, error)
	ListForUserName(userName string) ([]models.CheckinWithUser, error)
	Delete(id uint) error
}

// CheckinService owns check-in creation, listing and the ownership rule on
// delete.
type CheckinService struct {
	checkins  CheckinStore
	locations LocationStore
}

func NewCheckinService(checkins CheckinStore, locations LocationStore) *CheckinService {
	return &CheckinService{checkins: checkins, locations: locations}
}

// Add posts a comment on a location. The timestamp is assigned server-side
// at insert; the location must exist.
func (s *CheckinService) Add(userID, locationID uint, comment string) (*models.Checkin, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, errors.Wrap(apperrors.ErrValidation, "comment is required")
	}

	if _, err := s.locations.GetByID(locationID); err != nil {
		return nil, err
	}

	checkin := &models.Checkin{
		UserID:     userID,
		LocationID: locationID,
		Comment:    comment,
	}
	if err := s.checkins.Create(checkin); err != nil {
		return nil, err
	}

	return checkin, nil
}

func (s *CheckinService) ListForLocation(locationID uint) ([]models.CheckinWithUser, error) {
	return s.checkins.ListForLocation(locationID)
}

func (s *CheckinService) ListForUser(userName string) ([]models.CheckinWithUser, error) {
	return s.checkins.ListForUserName(userName)
}

// Delete removes a check-in only when the requester owns it. A non-owner
// request and a missing row are both silent no-ops: the response never
// reveals whether the row existed or who owns it.
func (s *CheckinService) Delete(checkinID, requesterID uint) error {
	checkin, err := s.checkins.GetByID(checkinID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			zaplogger.Warn("delete of missing checkin ignored", zaplogger.Fields{
				"checkin_id":   checkinID,
				"requester_id": requesterID,
			})
			return nil
		}
		return err
	}

	if checkin.UserID != requesterID {
		zaplogger.Warn("delete by non-owner ignored", zaplogger.Fields{
			"checkin_id":   checkinID,
			"owner_id":     checkin.UserID,
			"requester_id": requesterID,
		})
		return nil
	}

	return s.checkins.Delete(checkinID)
}
