package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/syntaxkim/project1/internal/api/middleware"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/pkg/utils/response"
)

// UserHandler serves the public profile and the comments page.
type UserHandler struct {
	users    userFinder
	checkins checkinFlow
}

func NewUserHandler(users userFinder, checkins checkinFlow) *UserHandler {
	return &UserHandler{users: users, checkins: checkins}
}

// UserPage renders a user's profile with their check-ins.
func (h *UserHandler) UserPage(c echo.Context) error {
	name := c.Param("name")

	user, err := h.users.GetByName(name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.ErrorPage(c, http.StatusNotFound, "User not found.")
		}
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	checkins, err := h.checkins.ListForUser(user.Name)
	if err != nil {
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	data := map[string]interface{}{
		"ProfileName": user.Name,
		"Checkins":    checkins,
	}
	if current, ok := middleware.CurrentUser(c); ok {
		data["UserName"] = current.UserName
	}

	return c.Render(http.StatusOK, "user.html", data)
}

// UserComments renders a user's comments with delete controls for the owner.
func (h *UserHandler) UserComments(c echo.Context) error {
	name := c.Param("name")

	user, err := h.users.GetByName(name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.ErrorPage(c, http.StatusNotFound, "User not found.")
		}
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	checkins, err := h.checkins.ListForUser(user.Name)
	if err != nil {
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	data := map[string]interface{}{
		"ProfileName": user.Name,
		"Checkins":    checkins,
	}
	if current, ok := middleware.CurrentUser(c); ok {
		data["UserName"] = current.UserName
		data["IsOwner"] = current.UserName == user.Name
	}

	return c.Render(http.StatusOK, "comments.html", data)
}
