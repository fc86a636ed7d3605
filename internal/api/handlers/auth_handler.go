// Package handlers contains the HTTP handlers for the Geocheck app
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/api/middleware"
	"github.com/syntaxkim/project1/pkg/utils/response"
)

// AuthHandler serves signup, signin, signout and the password change flow.
type AuthHandler struct {
	auth     authFlow
	sessions sessionStore
}

func NewAuthHandler(auth authFlow, sessions sessionStore) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// SignupPage renders the signup form.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	if _, ok := middleware.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "signup.html", nil)
}

// Signup creates an account. Success redirects to the welcome page without
// creating a session; the user signs in separately.
func (h *AuthHandler) Signup(c echo.Context) error {
	if _, ok := middleware.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	name := c.FormValue("name")
	password := c.FormValue("password")
	confirmation := c.FormValue("confirmation")

	_, err := h.auth.Signup(name, password, confirmation)
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsConflict(err) {
			return c.Render(http.StatusOK, "signup.html", map[string]interface{}{
				"Message": rootMessage(err),
			})
		}
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	return c.Redirect(http.StatusSeeOther, "/welcome")
}

// Welcome renders the post-signup page.
func (h *AuthHandler) Welcome(c echo.Context) error {
	return c.Render(http.StatusOK, "welcome.html", nil)
}

// SigninPage renders the signin form; an authenticated user is sent home.
func (h *AuthHandler) SigninPage(c echo.Context) error {
	if _, ok := middleware.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "signin.html", nil)
}

// Signin authenticates and issues the session cookie. Unknown user and bad
// password produce the same message.
func (h *AuthHandler) Signin(c echo.Context) error {
	if _, ok := middleware.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	name := c.FormValue("name")
	password := c.FormValue("password")

	user, err := h.auth.Signin(name, password)
	if err != nil {
		if apperrors.IsAuth(err) {
			return c.Render(http.StatusOK, "signin.html", map[string]interface{}{
				"Message": "Invalid username or password.",
			})
		}
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	token, err := h.sessions.Create(c.Request().Context(), user)
	if err != nil {
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	setSessionCookie(c, token)

	return c.Redirect(http.StatusSeeOther, "/")
}

// Signout destroys the session if present. Calling it anonymously is fine.
func (h *AuthHandler) Signout(c echo.Context) error {
	if token, ok := middleware.SessionToken(c); ok {
		if err := h.sessions.Destroy(c.Request().Context(), token); err != nil {
			return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		}
		if user, ok := middleware.CurrentUser(c); ok {
			h.auth.LogSignout(user.UserName)
		}
		clearSessionCookie(c)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// VerificationPage asks for the current password before a password change.
// Users can only open their own page.
func (h *AuthHandler) VerificationPage(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	if c.Param("name") != user.UserName {
		return response.ErrorPage(c, http.StatusNotFound, "Page not found.")
	}
	return c.Render(http.StatusOK, "verification.html", map[string]interface{}{
		"UserName": user.UserName,
	})
}

// Verify checks the current password and, on success, shows the password
// change form.
func (h *AuthHandler) Verify(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	if c.Param("name") != user.UserName {
		return response.ErrorPage(c, http.StatusNotFound, "Page not found.")
	}

	if err := h.auth.VerifyPassword(user.UserID, c.FormValue("password")); err != nil {
		if apperrors.IsAuth(err) {
			return c.Render(http.StatusOK, "verification.html", map[string]interface{}{
				"UserName": user.UserName,
				"Message":  "Invalid username or password.",
			})
		}
		return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}

	return c.Render(http.StatusOK, "updatepassword.html", map[string]interface{}{
		"UserName": user.UserName,
	})
}

// UpdatePassword changes the password and destroys the current session so
// the user must sign in again.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)

	current := c.FormValue("password")
	newPassword := c.FormValue("new_password")
	confirmation := c.FormValue("confirmation")

	if err := h.auth.ChangePassword(user.UserID, current, newPassword, confirmation); err != nil {
		switch {
		case apperrors.IsValidation(err):
			return c.Render(http.StatusOK, "updatepassword.html", map[string]interface{}{
				"UserName": user.UserName,
				"Message":  rootMessage(err),
			})
		case apperrors.IsAuth(err):
			return c.Render(http.StatusOK, "updatepassword.html", map[string]interface{}{
				"UserName": user.UserName,
				"Message":  "Invalid username or password.",
			})
		default:
			return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		}
	}

	if token, ok := middleware.SessionToken(c); ok {
		if err := h.sessions.Destroy(c.Request().Context(), token); err != nil {
			return response.ErrorPage(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		}
		clearSessionCookie(c)
	}

	return c.Redirect(http.StatusSeeOther, "/signin")
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
