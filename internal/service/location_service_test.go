package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
)

func newLocationFixture() *LocationService {
	return NewLocationService(&fakeLocationStore{locations: []models.Location{
		{ID: 1, Zipcode: "10001", City: "New York", Lat: 40.75, Long: -73.99, Population: 21102},
		{ID: 2, Zipcode: "94105", City: "San Francisco", Lat: 37.79, Long: -122.39, Population: 5846},
	}})
}

func TestSearchByZipcode(t *testing.T) {
	svc := newLocationFixture()

	results, err := svc.Search("10001")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "New York", results[0].City)
}

func TestSearchByCitySubstringCaseInsensitive(t *testing.T) {
	svc := newLocationFixture()

	results, err := svc.Search("francisco")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "94105", results[0].Zipcode)
}

func TestSearchNoMatchIsEmptyNotError(t *testing.T) {
	svc := newLocationFixture()

	results, err := svc.Search("nonexistent-xyz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newLocationFixture()

	_, err := svc.Search("   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetMissingLocation(t *testing.T) {
	svc := newLocationFixture()

	_, err := svc.Get(999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
