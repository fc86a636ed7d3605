package service

import (
	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
	"github.com/syntaxkim/project1/pkg/utils/logger"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
)

// UserStore is the account storage the auth flow depends on.
type UserStore interface {
	Create(user *models.User) error
	GetByName(name string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdatePasswordHash(userID uint, hash string) error
}

// dummyHash keeps the unknown-user path doing the same verify work as the
// wrong-password path.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService orchestrates signup, signin and password change.
type AuthService struct {
	users  UserStore
	hasher *Hasher
	audit  *logger.Logger
}

// NewAuthService creates an AuthService. audit may be nil; auth events are
// then not recorded.
func NewAuthService(users UserStore, audit *logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: NewHasher(),
		audit:  audit,
	}
}

// Signup creates an account. It does not create a session; the user signs in
// separately. A duplicate name fails with the conflict sentinel and writes
// no row.
func (s *AuthService) Signup(name, password, confirmation string) (*models.User, error) {
	if name == "" || password == "" {
		return nil, errors.Wrap(apperrors.ErrValidation, "username and password are required")
	}
	if password != confirmation {
		return nil, errors.Wrap(apperrors.ErrValidation, "passwords don't match")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}

	user := &models.User{Name: name, PasswordHash: hash}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.logEvent(logger.EventSignup, name, map[string]interface{}{"user_id": user.ID})

	return user, nil
}

// Signin verifies credentials. Unknown name and wrong password return the
// same error, so usernames cannot be enumerated.
func (s *AuthService) Signin(name, password string) (*models.User, error) {
	user, err := s.users.GetByName(name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.hasher.Verify(password, dummyHash)
			return nil, apperrors.ErrAuth
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrAuth
	}

	s.logEvent(logger.EventSignin, name, map[string]interface{}{"user_id": user.ID})

	return user, nil
}

// VerifyPassword checks a signed-in user's current password, for the
// verification step ahead of a password change.
func (s *AuthService) VerifyPassword(userID uint, password string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return apperrors.ErrAuth
	}
	return nil
}

// ChangePassword overwrites the stored hash after verifying the current
// password. The caller must destroy the session afterwards to force
// re-authentication.
func (s *AuthService) ChangePassword(userID uint, current, newPassword, confirmation string) error {
	if newPassword == "" {
		return errors.Wrap(apperrors.ErrValidation, "new password is required")
	}
	if newPassword != confirmation {
		return errors.Wrap(apperrors.ErrValidation, "passwords don't match")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(current, user.PasswordHash) {
		return apperrors.ErrAuth
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}

	if err := s.users.UpdatePasswordHash(userID, hash); err != nil {
		return err
	}

	s.logEvent(logger.EventPasswordChange, user.Name, map[string]interface{}{"user_id": userID})

	return nil
}

// LogSignout records a signout audit entry.
func (s *AuthService) LogSignout(userName string) {
	s.logEvent(logger.EventSignout, userName, nil)
}

func (s *AuthService) logEvent(event, userName string, fields map[string]interface{}) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Log(event, userName, fields); err != nil {
		zaplogger.Warn("failed to write auth log entry", zaplogger.Fields{
			"event": event,
			"error": err.Error(),
		})
	}
}
