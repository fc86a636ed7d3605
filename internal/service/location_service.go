package service

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
)

// LocationStore is the read side of the location reference data.
type LocationStore interface {
	Search(query string) ([]models.Location, error)
	GetByID(id uint) (*models.Location, error)
	GetByZipcode(zipcode string) (*models.Location, error)
}

// LocationService answers location lookups for pages and the JSON API.
type LocationService struct {
	locations LocationStore
}

func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

// Search returns locations whose zipcode or city contains the query,
// case-insensitively. No match is an empty list, not an error.
func (s *LocationService) Search(query string) ([]models.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Wrap(apperrors.ErrValidation, "search query is required")
	}
	return s.locations.Search(query)
}

func (s *LocationService) Get(id uint) (*models.Location, error) {
	return s.locations.GetByID(id)
}

func (s *LocationService) GetByZipcode(zipcode string) (*models.Location, error) {
	return s.locations.GetByZipcode(zipcode)
}
