package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
	"github.com/syntaxkim/project1/internal/weather"
)

// nameRenderer records which template a handler rendered without needing the
// real template files.
type nameRenderer struct{}

func (nameRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	_, err := io.WriteString(w, name)
	return err
}

type fakeCheckins struct {
	forLocation []models.CheckinWithUser
}

func (f *fakeCheckins) Add(userID, locationID uint, comment string) (*models.Checkin, error) {
	return &models.Checkin{UserID: userID, LocationID: locationID, Comment: comment}, nil
}

func (f *fakeCheckins) ListForLocation(locationID uint) ([]models.CheckinWithUser, error) {
	return f.forLocation, nil
}

func (f *fakeCheckins) ListForUser(userName string) ([]models.CheckinWithUser, error) {
	return nil, nil
}

func (f *fakeCheckins) Delete(checkinID, requesterID uint) error { return nil }

type failingWeather struct{}

func (failingWeather) CurrentForLocation(ctx context.Context, location *models.Location) (*weather.Snapshot, error) {
	return nil, apperrors.ErrGateway
}

// The location page must render even when the weather provider is down.
func TestLocationPageDegradesWithoutWeather(t *testing.T) {
	locations := &fakeLocations{byZipcode: map[string]*models.Location{
		"10001": {ID: 1, Zipcode: "10001", City: "New York", Lat: 40.75, Long: -73.99},
	}}
	h := NewLocationHandler(locations, &fakeCheckins{}, failingWeather{})

	e := echo.New()
	e.Renderer = nameRenderer{}
	req := httptest.NewRequest(http.MethodGet, "/locations/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/locations/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.LocationPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "location.html", rec.Body.String())
}

func TestLocationPageUnknownID(t *testing.T) {
	h := NewLocationHandler(&fakeLocations{byZipcode: map[string]*models.Location{}}, &fakeCheckins{}, failingWeather{})

	e := echo.New()
	e.Renderer = nameRenderer{}
	req := httptest.NewRequest(http.MethodGet, "/locations/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/locations/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.LocationPage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error.html", rec.Body.String())
}
