package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "flowt.dev/flowt/internal/http/middlewares"
	"flowt.dev/flowt/internal/http/validators"
	"flowt.dev/flowt/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.Title, "title"); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.Title, req.Order)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTaskDetails(c echo.Context) error {
	detail, err := h.taskService.TaskDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	patch := services.TaskPatch{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
	}
	if err := h.taskService.UpdateTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), patch); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

// MoveTask persists a drag-and-drop move of one task.
func (h *Handler) MoveTask(c echo.Context) error {
	var req MoveTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.ColumnID, "columnId"); err != nil {
		return err
	}

	if err := h.taskService.MoveTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.ColumnID, req.Order); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) ToggleTaskCompletion(c echo.Context) error {
	var req ToggleCompletionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.taskService.ToggleCompletion(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.IsCompleted); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) AssignTask(c echo.Context) error {
	var req AssignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.taskService.AssignTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.UserID); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) AddDependency(c echo.Context) error {
	var req AddDependencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.BlockingTaskID, "blockingTaskId"); err != nil {
		return err
	}

	if err := h.depService.Add(c.Request().Context(), c.Param("id"), req.BlockingTaskID); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) RemoveDependency(c echo.Context) error {
	if err := h.depService.Remove(c.Request().Context(), c.Param("id"), c.Param("blockingId")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) CreateSubtask(c echo.Context) error {
	var req CreateSubtaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.RequireField(req.Title, "title"); err != nil {
		return err
	}

	if err := h.taskService.CreateSubtask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req.Title); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) ToggleSubtask(c echo.Context) error {
	var req ToggleSubtaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.taskService.ToggleSubtask(c.Request().Context(), c.Param("id"), req.IsCompleted); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) DeleteSubtask(c echo.Context) error {
	if err := h.taskService.DeleteSubtask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) AttachTaskLabel(c echo.Context) error {
	if err := h.taskService.ToggleTaskLabel(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), c.Param("labelId"), true); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) DetachTaskLabel(c echo.Context) error {
	if err := h.taskService.ToggleTaskLabel(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), c.Param("labelId"), false); err != nil {
		return jsonError(c, err)
	}
	return jsonSuccess(c)
}

func (h *Handler) ListMyTasks(c echo.Context) error {
	tasks, err := h.taskService.ListUserTasks(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

func (h *Handler) ListUpcomingDeadlines(c echo.Context) error {
	deadlineRange := c.QueryParam("range")
	if deadlineRange == "" {
		deadlineRange = "all"
	}

	tasks, err := h.taskService.UpcomingDeadlines(c.Request().Context(), middleware.CallerFrom(c), deadlineRange)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

func (h *Handler) RecentActivity(c echo.Context) error {
	entries, err := h.activityService.Recent(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"activity": entries})
}

func (h *Handler) AllActivity(c echo.Context) error {
	entries, err := h.activityService.All(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"activity": entries})
}
