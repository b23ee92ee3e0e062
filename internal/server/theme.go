package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// The theme preference lives in a long-lived cookie, read at startup by the
// frontend and written on toggle. It has no bearing on the todo logic.

const themeCookie = "theme"

const defaultTheme = "dark"

func (s *Server) handleGetTheme(c echo.Context) error {
	theme := defaultTheme
	if cookie, err := c.Cookie(themeCookie); err == nil && (cookie.Value == "light" || cookie.Value == "dark") {
		theme = cookie.Value
	}
	return c.JSON(http.StatusOK, echo.Map{"theme": theme})
}

func (s *Server) handleSetTheme(c echo.Context) error {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Theme != "light" && req.Theme != "dark" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theme must be light or dark"})
	}

	c.SetCookie(&http.Cookie{
		Name:     themeCookie,
		Value:    req.Theme,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"theme": req.Theme})
}
