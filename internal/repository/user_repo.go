package repository

import (
	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
	"gorm.io/gorm"
)

// UserRepository persists user accounts.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new account. The insert is a single atomic statement; a
// unique-constraint violation on name maps to the conflict sentinel and
// leaves no row behind.
func (r *UserRepository) Create(user *models.User) error {
	if err := r.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrap(apperrors.ErrConflict, "username already taken")
		}
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (r *UserRepository) GetByName(name string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("name = ?", name).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return &user, nil
}

// UpdatePasswordHash overwrites the stored hash inside a transaction.
func (r *UserRepository) UpdatePasswordHash(userID uint, hash string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", hash)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}
