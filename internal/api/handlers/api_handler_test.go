package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
)

type fakeLocations struct {
	byZipcode map[string]*models.Location
}

func (f *fakeLocations) Search(query string) ([]models.Location, error) { return nil, nil }

func (f *fakeLocations) Get(id uint) (*models.Location, error) {
	for _, loc := range f.byZipcode {
		if loc.ID == id {
			return loc, nil
		}
	}
	return nil, errors.Wrap(apperrors.ErrNotFound, "location not found")
}

func (f *fakeLocations) GetByZipcode(zipcode string) (*models.Location, error) {
	if loc, ok := f.byZipcode[zipcode]; ok {
		return loc, nil
	}
	return nil, errors.Wrap(apperrors.ErrNotFound, "location not found")
}

func newAPIFixture() *APIHandler {
	return NewAPIHandler(&fakeLocations{byZipcode: map[string]*models.Location{
		"10001": {ID: 1, Zipcode: "10001", City: "New York", Lat: 40.75, Long: -73.99, Population: 21102},
	}})
}

func apiContext(t *testing.T, path string, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func TestLocationByZipcode(t *testing.T) {
	h := newAPIFixture()
	c, rec := apiContext(t, "/api/locations/:zipcode", []string{"zipcode"}, []string{"10001"})

	require.NoError(t, h.LocationByZipcode(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "10001", body["Zipcode"])
	assert.Equal(t, "New York", body["City"])
	assert.Equal(t, 40.75, body["Latitude"])
	assert.Equal(t, -73.99, body["Longitude"])
	assert.Equal(t, float64(21102), body["Population"])
}

func TestLocationByZipcodeInvalid(t *testing.T) {
	h := newAPIFixture()
	c, rec := apiContext(t, "/api/locations/:zipcode", []string{"zipcode"}, []string{"00000"})

	require.NoError(t, h.LocationByZipcode(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid zipcode", body["ERROR"])
}

func TestLocationField(t *testing.T) {
	h := newAPIFixture()

	tests := []struct {
		field string
		key   string
		want  interface{}
	}{
		{"city", "City", "New York"},
		{"lat", "Latitude", 40.75},
		{"long", "Longitude", -73.99},
	}

	for _, tt := range tests {
		c, rec := apiContext(t, "/api/locations/:zipcode/:field",
			[]string{"zipcode", "field"}, []string{"10001", tt.field})

		require.NoError(t, h.LocationField(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, tt.want, body[tt.key])
	}
}

func TestLocationFieldInvalid(t *testing.T) {
	h := newAPIFixture()
	c, rec := apiContext(t, "/api/locations/:zipcode/:field",
		[]string{"zipcode", "field"}, []string{"10001", "population"})

	require.NoError(t, h.LocationField(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid field", body["ERROR"])
}
