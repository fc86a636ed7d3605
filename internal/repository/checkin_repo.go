package repository

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
	"gorm.io/gorm"
)

// FeedChannel is the Postgres NOTIFY channel announcing new check-ins.
const FeedChannel = "geocheck_checkins"

// CheckinRepository persists check-ins.
type CheckinRepository struct {
	DB *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{DB: db}
}

// Create inserts a check-in and announces it on the feed channel. Insert and
// notify run in one transaction so a failed notify rolls the row back.
func (r *CheckinRepository) Create(checkin *models.Checkin) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(checkin).Error; err != nil {
			return err
		}

		payload, err := json.Marshal(checkin)
		if err != nil {
			return err
		}
		return tx.Exec("SELECT pg_notify(?, ?)", FeedChannel, string(payload)).Error
	})
	if err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}

func (r *CheckinRepository) GetByID(id uint) (*models.Checkin, error) {
	var checkin models.Checkin
	err := r.DB.First(&checkin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "checkin not found")
		}
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return &checkin, nil
}

// ListForLocation returns the location's check-ins joined to users for the
// owner display names, newest first.
func (r *CheckinRepository) ListForLocation(locationID uint) ([]models.CheckinWithUser, error) {
	var checkins []models.CheckinWithUser
	err := r.DB.Raw(fmt.Sprintf(
		`SELECT c.id, c.user_id, u.name AS user_name, c.location_id, c.comment, c.created_at
		 FROM %s c JOIN %s u ON u.id = c.user_id
		 WHERE c.location_id = ?
		 ORDER BY c.created_at DESC`,
		models.CheckinsTableName, models.UsersTableName),
		locationID).Scan(&checkins).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return checkins, nil
}

// ListForUserName returns all check-ins posted by the named user, newest first.
func (r *CheckinRepository) ListForUserName(userName string) ([]models.CheckinWithUser, error) {
	var checkins []models.CheckinWithUser
	err := r.DB.Raw(fmt.Sprintf(
		`SELECT c.id, c.user_id, u.name AS user_name, c.location_id, c.comment, c.created_at
		 FROM %s c JOIN %s u ON u.id = c.user_id
		 WHERE u.name = ?
		 ORDER BY c.created_at DESC`,
		models.CheckinsTableName, models.UsersTableName),
		userName).Scan(&checkins).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return checkins, nil
}

func (r *CheckinRepository) Delete(id uint) error {
	if err := r.DB.Delete(&models.Checkin{}, id).Error; err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}
