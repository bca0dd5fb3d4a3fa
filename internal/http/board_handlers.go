package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "flowt.dev/flowt/internal/http/middlewares"
	"flowt.dev/flowt/internal/http/validators"
)

func (h *Handler) ListBoards(c echo.Context) error {
	boards, err := h.boardService.ListBoards(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"boards": boards})
}

func (h *Handler) GetBoard(c echo.Context) error {
	board, err := h.boardService.GetBoard(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

func (h *Handler) CreateBoard(c echo.Context) error {
	var req CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	board, err := h.boardService.CreateBoard(c.Request().Context(), middleware.CallerFrom(c), req.Title)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, board)
}

func (h *Handler) DeleteBoard(c echo.Context) error {
	if err := h.boardService.DeleteBoard(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) CreateColumn(c echo.Context) error {
	var req CreateColumnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.Title, "title"); err != nil {
		return err
	}

	column, err := h.boardService.CreateColumn(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.Title, req.Order)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, column)
}

func (h *Handler) UpdateColumn(c echo.Context) error {
	var req UpdateColumnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.Title, "title"); err != nil {
		return err
	}

	if err := h.boardService.UpdateColumn(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.Title); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) DeleteColumn(c echo.Context) error {
	if err := h.boardService.DeleteColumn(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) UpdateColumnOrder(c echo.Context) error {
	var req UpdateColumnOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.boardService.UpdateColumnOrder(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.Order); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) UpdateColumnsOrder(c echo.Context) error {
	var req UpdateColumnsOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireIDs(req.ColumnIDs, "columnIds"); err != nil {
		return err
	}

	if err := h.boardService.UpdateColumnsOrder(c.Request().Context(), middleware.CallerFrom(c), req.ColumnIDs); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) CreateBoardLabel(c echo.Context) error {
	var req CreateLabelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.Name, "name"); err != nil {
		return err
	}

	label, err := h.taskService.CreateBoardLabel(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.Name, req.Color)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, label)
}

func (h *Handler) DeleteBoardLabel(c echo.Context) error {
	if err := h.taskService.DeleteBoardLabel(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) ListBoardTasksSimple(c echo.Context) error {
	rows, err := h.taskService.ListBoardTasksSimple(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": rows})
}

func (h *Handler) ListEligibleBoardUsers(c echo.Context) error {
	users, err := h.adminService.ListEligibleBoardUsers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *Handler) DashboardStats(c echo.Context) error {
	stats, err := h.boardService.Stats(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
