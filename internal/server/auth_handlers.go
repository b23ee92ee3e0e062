package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	// Form-level checks happen before any backend call is issued.
	if req.Password != req.Confirm {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passwords do not match"})
	}

	user, err := s.auth.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	token, err := s.auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(72 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (s *Server) handleSignout(c echo.Context) error {
	// Best effort: drop the signed-in user's view state, then expire the
	// cookie regardless of whether the token still resolves.
	if user, err := s.auth.CurrentUser(c.Request().Context(), sessionToken(c)); err == nil {
		s.views.Drop(user.ID)
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (s *Server) handleMe(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}
