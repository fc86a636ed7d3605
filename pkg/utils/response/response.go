// Package response contains response utility functions shared by the handlers
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError is the JSON error shape of the /api routes.
type APIError struct {
	Message string `json:"ERROR"`
}

// JSON sends a successful JSON response
func JSON(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorJSON sends the API error shape with the given HTTP status
func ErrorJSON(c echo.Context, httpStatus int, message string) error {
	return c.JSON(httpStatus, APIError{Message: message})
}

// ErrorPage renders the error page with a human-readable message
func ErrorPage(c echo.Context, httpStatus int, message string) error {
	return c.Render(httpStatus, "error.html", map[string]interface{}{
		"Message": message,
	})
}
