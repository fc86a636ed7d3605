// Package middleware provides the middleware for the Echo instance
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/syntaxkim/project1/internal/service"
)

// SessionCookieName is the cookie carrying the opaque session token. The
// cookie has no Max-Age, so the browser drops it with the session; the
// server-side record expires by the session store's own TTL.
const SessionCookieName = "geocheck_session"

// Context keys set for authenticated requests.
const (
	ContextUserID       = "user_id"
	ContextUserName     = "user_name"
	ContextSessionToken = "session_token"
)

// SessionMiddleware resolves the session cookie, if any, and puts the
// identity on the request context. Anonymous requests pass through.
func SessionMiddleware(sessions *service.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			data, err := sessions.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				// Expired or unknown token; treat as anonymous.
				return next(c)
			}

			c.Set(ContextUserID, data.UserID)
			c.Set(ContextUserName, data.UserName)
			c.Set(ContextSessionToken, cookie.Value)

			return next(c)
		}
	}
}

// RequireAuth guards routes that need an authenticated user, redirecting
// anonymous requests to the signin page.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentUser(c); !ok {
				return c.Redirect(http.StatusSeeOther, "/signin")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated identity on the context, if any.
func CurrentUser(c echo.Context) (service.SessionData, bool) {
	userID, ok := c.Get(ContextUserID).(uint)
	if !ok {
		return service.SessionData{}, false
	}
	userName, _ := c.Get(ContextUserName).(string)
	return service.SessionData{UserID: userID, UserName: userName}, true
}

// SessionToken returns the raw token for the current request, if any.
func SessionToken(c echo.Context) (string, bool) {
	token, ok := c.Get(ContextSessionToken).(string)
	return token, ok
}
