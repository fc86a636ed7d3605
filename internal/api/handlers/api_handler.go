package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/config"
	"github.com/syntaxkim/project1/pkg/utils/response"
)

// LocationResource is the JSON shape of /api/locations/{zipcode}.
type LocationResource struct {
	Zipcode    string
	City       string
	Latitude   float64
	Longitude  float64
	Population int64
}

// APIHandler serves the JSON location API.
type APIHandler struct {
	locations locationFinder
}

func NewAPIHandler(locations locationFinder) *APIHandler {
	return &APIHandler{locations: locations}
}

// Index describes the API routes.
func (h *APIHandler) Index(c echo.Context) error {
	return response.JSON(c, map[string]interface{}{
		"name":    config.AppName + " API",
		"version": config.AppVersion,
		"routes": []string{
			"GET /api/locations/{zipcode}",
			"GET /api/locations/{zipcode}/{field}  field: city | lat | long",
		},
	})
}

// LocationByZipcode returns the full location resource for a zipcode.
func (h *APIHandler) LocationByZipcode(c echo.Context) error {
	location, err := h.locations.GetByZipcode(c.Param("zipcode"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.ErrorJSON(c, http.StatusUnprocessableEntity, "invalid zipcode")
		}
		return response.ErrorJSON(c, http.StatusInternalServerError, "store unavailable")
	}

	return response.JSON(c, LocationResource{
		Zipcode:    location.Zipcode,
		City:       location.City,
		Latitude:   location.Lat,
		Longitude:  location.Long,
		Population: location.Population,
	})
}

// LocationField returns a single field of the location resource.
func (h *APIHandler) LocationField(c echo.Context) error {
	field := c.Param("field")
	switch field {
	case "city", "lat", "long":
	default:
		return response.ErrorJSON(c, http.StatusUnprocessableEntity, "invalid field")
	}

	location, err := h.locations.GetByZipcode(c.Param("zipcode"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.ErrorJSON(c, http.StatusUnprocessableEntity, "invalid zipcode")
		}
		return response.ErrorJSON(c, http.StatusInternalServerError, "store unavailable")
	}

	switch field {
	case "city":
		return response.JSON(c, map[string]interface{}{"City": location.City})
	case "lat":
		return response.JSON(c, map[string]interface{}{"Latitude": location.Lat})
	default:
		return response.JSON(c, map[string]interface{}{"Longitude": location.Long})
	}
}
