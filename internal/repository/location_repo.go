package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
	"gorm.io/gorm"
)

// LocationRepository reads the location reference data and is written only
// by the import job.
type LocationRepository struct {
	DB *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

// Search matches zipcode or city by case-insensitive substring. An empty
// result is a valid outcome, not an error.
func (r *LocationRepository) Search(query string) ([]models.Location, error) {
	pattern := "%" + query + "%"

	var locations []models.Location
	err := r.DB.
		Where("zipcode ILIKE ? OR city ILIKE ?", pattern, pattern).
		Order("zipcode ASC").
		Find(&locations).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return locations, nil
}

func (r *LocationRepository) GetByID(id uint) (*models.Location, error) {
	var location models.Location
	err := r.DB.First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "location not found")
		}
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return &location, nil
}

func (r *LocationRepository) GetByZipcode(zipcode string) (*models.Location, error) {
	var location models.Location
	err := r.DB.Where("zipcode = ?", zipcode).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "location not found")
		}
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return &location, nil
}

func (r *LocationRepository) Count() (int64, error) {
	var count int64
	if err := r.DB.Model(&models.Location{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return count, nil
}

// TruncateLocations empties the table ahead of a fresh import.
func (r *LocationRepository) TruncateLocations() error {
	return r.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", models.LocationsTableName)).Error
}

// InsertLocations batch-inserts parsed CSV records. Expected columns:
// zipcode, city, lat, long, population.
func (r *LocationRepository) InsertLocations(records [][]string) (int64, error) {
	valueStrings := make([]string, 0, len(records))
	valueArgs := make([]interface{}, 0, len(records)*5)

	for _, record := range records {
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?)")

		lat, _ := strconv.ParseFloat(record[2], 64)
		long, _ := strconv.ParseFloat(record[3], 64)
		population, _ := strconv.ParseInt(record[4], 10, 64)

		valueArgs = append(valueArgs, record[0], record[1], lat, long, population)
	}

	stmt := fmt.Sprintf("INSERT INTO %s (zipcode, city, lat, long, population) VALUES %s",
		models.LocationsTableName,
		strings.Join(valueStrings, ","),
	)

	result := r.DB.Exec(stmt, valueArgs...)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert batch: %v", result.Error)
	}

	return result.RowsAffected, nil
}
