package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/auth/controller"
	"github.com/h809829-coder/agrosmart/pkg/auth/service"
	"github.com/h809829-coder/agrosmart/pkg/middleware"
)

type AuthCtrl struct {
	s            service.AuthService
	secureCookie bool
}

var _ controller.AuthController = (*AuthCtrl)(nil)

// New builds the handlers. secureCookie marks the session cookie Secure and
// should be set behind TLS.
func New(s service.AuthService, secureCookie bool) *AuthCtrl {
	return &AuthCtrl{s: s, secureCookie: secureCookie}
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, "invalid json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	u, err := h.s.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req service.LoginInput
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, "invalid json")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res, err := h.s.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, res)
}

func (h *AuthCtrl) Logout(c echo.Context) error {
	if err := h.s.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthCtrl) Me(c echo.Context) error {
	u, err := h.s.Me(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
