package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "flowt.dev/flowt/internal/http/middlewares"
	"flowt.dev/flowt/internal/http/validators"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.adminService.CreateUser(c.Request().Context(), middleware.CallerFrom(c), req.Username, req.Password, req.GroupID); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.adminService.DeleteUser(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) CreateGroup(c echo.Context) error {
	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.adminService.CreateGroup(c.Request().Context(), middleware.CallerFrom(c), req.Name, req.Permissions); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

func (h *Handler) UpdateGroup(c echo.Context) error {
	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.adminService.UpdateGroup(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.Name, req.Permissions); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) DeleteGroup(c echo.Context) error {
	if err := h.adminService.DeleteGroup(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) ListGroups(c echo.Context) error {
	groups, err := h.adminService.ListGroups(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"groups": groups})
}

func (h *Handler) UpdateUserBoards(c echo.Context) error {
	var req UpdateUserBoardsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.adminService.UpdateUserBoards(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.BoardIDs); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *Handler) GetUserProfile(c echo.Context) error {
	profile, err := h.adminService.UserProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) GetSetting(c echo.Context) error {
	value, err := h.settingService.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"key": c.Param("key"), "value": value})
}

func (h *Handler) UpdateSetting(c echo.Context) error {
	var req UpdateSettingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.Value, "value"); err != nil {
		return err
	}

	if err := h.settingService.Update(c.Request().Context(), middleware.CallerFrom(c), c.Param("key"), req.Value); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

// ResetDatabase wipes everything and sends the client back to setup.
func (h *Handler) ResetDatabase(c echo.Context) error {
	if err := h.adminService.ResetDatabase(c.Request().Context(), middleware.CallerFrom(c)); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "redirect": "/setup"})
}
