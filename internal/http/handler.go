package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"flowt.dev/flowt/internal/auth"
	apperrors "flowt.dev/flowt/internal/errors"
	"flowt.dev/flowt/internal/services"
)

type Handler struct {
	codec           *auth.SessionCodec
	authService     *services.AuthService
	boardService    *services.BoardService
	taskService     *services.TaskService
	depService      *services.DependencyService
	adminService    *services.AdminService
	settingService  *services.SettingService
	activityService *services.ActivityService
}

func NewHandler(
	codec *auth.SessionCodec,
	authService *services.AuthService,
	boardService *services.BoardService,
	taskService *services.TaskService,
	depService *services.DependencyService,
	adminService *services.AdminService,
	settingService *services.SettingService,
	activityService *services.ActivityService,
) *Handler {
	return &Handler{
		codec:           codec,
		authService:     authService,
		boardService:    boardService,
		taskService:     taskService,
		depService:      depService,
		adminService:    adminService,
		settingService:  settingService,
		activityService: activityService,
	}
}

// jsonError renders the uniform failure shape. Domain errors carry their
// own status; anything else is masked as an internal error and logged.
func jsonError(c echo.Context, err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return c.JSON(appErr.StatusCode, echo.Map{"error": appErr.Message})
	}

	log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
}

func jsonSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
