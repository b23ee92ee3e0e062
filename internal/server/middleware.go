package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DevBytes-J/todo-app/internal/models"
	"github.com/DevBytes-J/todo-app/internal/service"
)

const sessionCookie = "todo_session"

const userContextKey = "current_user"

// requireAuth resolves the session token from the cookie or an Authorization
// bearer header and stashes the account on the request context. Every todo
// route sits behind it.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := s.auth.CurrentUser(c.Request().Context(), sessionToken(c))
		if err != nil {
			if errors.Is(err, service.ErrNotAuthenticated) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
			}
			return httpError(c, err)
		}
		c.Set(userContextKey, user)
		return next(c)
	}
}

func sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

// httpError maps the service failure taxonomy onto status codes. Errors are
// one-shot: no retry, prior view state stays as it was.
func httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": service.ErrNotFound.Error()})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "request failed, please try again"})
	}
}
