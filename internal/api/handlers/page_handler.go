package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/syntaxkim/project1/internal/api/middleware"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/pkg/utils/response"
)

// PageHandler serves the home page and the location search.
type PageHandler struct {
	locations locationFinder
}

func NewPageHandler(locations locationFinder) *PageHandler {
	return &PageHandler{locations: locations}
}

// Index renders the home page, greeting the signed-in user or asking the
// visitor to sign in.
func (h *PageHandler) Index(c echo.Context) error {
	data := map[string]interface{}{
		"Message": "You need to sign in to use our service.",
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["UserName"] = user.UserName
		data["Message"] = "hello, " + user.UserName
	}
	return c.Render(http.StatusOK, "index.html", data)
}

// Search matches locations by zipcode or city substring. No match renders
// the results page with an empty list, not an error.
func (h *PageHandler) Search(c echo.Context) error {
	query := c.FormValue("location")

	locations, err := h.locations.Search(query)
	if err != nil {
		if apperrors.IsValidation(err) {
			return c.Render(http.StatusOK, "index.html", map[string]interface{}{
				"Message": rootMessage(err),
			})
		}
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	data := map[string]interface{}{
		"Query":     query,
		"Locations": locations,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["UserName"] = user.UserName
	}

	return c.Render(http.StatusOK, "search.html", data)
}
