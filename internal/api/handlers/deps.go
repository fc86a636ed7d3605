package handlers

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/models"
	"github.com/syntaxkim/project1/internal/weather"
)

// The handlers depend on the service layer through these contracts; the
// concrete services in internal/service satisfy them.

type authFlow interface {
	Signup(name, password, confirmation string) (*models.User, error)
	Signin(name, password string) (*models.User, error)
	VerifyPassword(userID uint, password string) error
	ChangePassword(userID uint, current, newPassword, confirmation string) error
	LogSignout(userName string)
}

type sessionStore interface {
	Create(ctx context.Context, user *models.User) (string, error)
	Destroy(ctx context.Context, token string) error
}

type locationFinder interface {
	Search(query string) ([]models.Location, error)
	Get(id uint) (*models.Location, error)
	GetByZipcode(zipcode string) (*models.Location, error)
}

type checkinFlow interface {
	Add(userID, locationID uint, comment string) (*models.Checkin, error)
	ListForLocation(locationID uint) ([]models.CheckinWithUser, error)
	ListForUser(userName string) ([]models.CheckinWithUser, error)
	Delete(checkinID, requesterID uint) error
}

type weatherLookup interface {
	CurrentForLocation(ctx context.Context, location *models.Location) (*weather.Snapshot, error)
}

type userFinder interface {
	GetByName(name string) (*models.User, error)
}

// rootMessage strips the taxonomy sentinel off a wrapped error, leaving the
// user-facing message the service attached.
func rootMessage(err error) string {
	msg := err.Error()
	if cause := errors.Cause(err); cause != nil && cause != err {
		msg = strings.TrimSuffix(msg, ": "+cause.Error())
	}
	return msg
}
