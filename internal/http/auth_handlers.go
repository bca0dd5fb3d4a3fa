package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"flowt.dev/flowt/internal/auth"
	middleware "flowt.dev/flowt/internal/http/middlewares"
	"flowt.dev/flowt/internal/http/validators"
)

func (h *Handler) GetSetupStatus(c echo.Context) error {
	needsSetup, err := h.authService.NeedsSetup(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"needsSetup": needsSetup})
}

// InitialSetup creates the first administrator and logs them in.
func (h *Handler) InitialSetup(c echo.Context) error {
	var req SetupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireCredentials(req.Username, req.Password); err != nil {
		return err
	}

	caller, err := h.authService.InitialSetup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return jsonError(c, err)
	}

	if err := h.setSessionCookie(c, caller); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, caller)
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireCredentials(req.Username, req.Password); err != nil {
		return err
	}

	caller, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return jsonError(c, err)
	}

	if err := h.setSessionCookie(c, caller); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, caller)
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return jsonSuccess(c)
}

// Bootstrap returns what every page needs to render its chrome: the caller,
// branding and the board-creation gate.
func (h *Handler) Bootstrap(c echo.Context) error {
	caller := middleware.CallerFrom(c)
	ctx := c.Request().Context()

	logoText, adminRoleName, err := h.settingService.Branding(ctx)
	if err != nil {
		return jsonError(c, err)
	}

	canCreateBoard, err := h.boardService.CanCreateBoard(ctx, caller)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":           caller,
		"logoText":       logoText,
		"adminRoleName":  adminRoleName,
		"canCreateBoard": canCreateBoard,
	})
}

func (h *Handler) setSessionCookie(c echo.Context, caller auth.Caller) error {
	token, expires, err := h.codec.Encode(caller)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
