package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/syntaxkim/project1/internal/api/middleware"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/pkg/utils/response"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
)

// LocationHandler serves the location page, check-in posting and deletion.
type LocationHandler struct {
	locations locationFinder
	checkins  checkinFlow
	weather   weatherLookup
}

func NewLocationHandler(locations locationFinder, checkins checkinFlow, weather weatherLookup) *LocationHandler {
	return &LocationHandler{locations: locations, checkins: checkins, weather: weather}
}

// LocationPage renders one location with its current weather and check-ins.
// A weather provider failure degrades to a page without weather data.
func (h *LocationHandler) LocationPage(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.ErrorPage(c, http.StatusNotFound, "Location not found.")
	}
	return h.renderLocationPage(c, id, "")
}

// AddCheckin posts a comment on the location for the signed-in user.
func (h *LocationHandler) AddCheckin(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.ErrorPage(c, http.StatusNotFound, "Location not found.")
	}

	user, _ := middleware.CurrentUser(c)

	_, err = h.checkins.Add(user.UserID, id, c.FormValue("comment"))
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			return h.renderLocationPage(c, id, rootMessage(err))
		case apperrors.IsNotFound(err):
			return response.ErrorPage(c, http.StatusNotFound, "Location not found.")
		default:
			return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		}
	}

	return c.Redirect(http.StatusSeeOther, "/locations/"+strconv.FormatUint(uint64(id), 10))
}

// DeleteCheckin removes a check-in owned by the requester. A request for a
// check-in the user does not own is a silent no-op.
func (h *LocationHandler) DeleteCheckin(c echo.Context) error {
	id, err := parseID(c.FormValue("checkin_id"))
	if err != nil {
		return response.ErrorPage(c, http.StatusNotFound, "Comment not found.")
	}

	user, _ := middleware.CurrentUser(c)

	if err := h.checkins.Delete(id, user.UserID); err != nil {
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	redirect := c.Request().Referer()
	if redirect == "" {
		redirect = "/user/" + user.UserName + "/comment"
	}
	return c.Redirect(http.StatusSeeOther, redirect)
}

func (h *LocationHandler) renderLocationPage(c echo.Context, id uint, message string) error {
	location, err := h.locations.Get(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.ErrorPage(c, http.StatusNotFound, "Location not found.")
		}
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	data := map[string]interface{}{
		"Location": location,
		"Message":  message,
	}

	snapshot, err := h.weather.CurrentForLocation(c.Request().Context(), location)
	if err != nil {
		zaplogger.Warn("weather lookup failed", zaplogger.Fields{
			"location_id": location.ID,
			"error":       err.Error(),
		})
		data["WeatherMessage"] = "Weather data is temporarily unavailable."
	} else {
		data["Weather"] = snapshot
	}

	checkins, err := h.checkins.ListForLocation(id)
	if err != nil {
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
	data["Checkins"] = checkins

	if user, ok := middleware.CurrentUser(c); ok {
		data["UserName"] = user.UserName
		data["UserID"] = user.UserID
	}

	return c.Render(http.StatusOK, "location.html", data)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
