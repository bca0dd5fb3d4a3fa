package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"flowt.dev/flowt/internal/auth"
	middleware "flowt.dev/flowt/internal/http/middlewares"
	"flowt.dev/flowt/internal/limiter"
)

func Register(e *echo.Echo, h *Handler, codec *auth.SessionCodec, store limiter.Store, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(store, rateLimitPerMinute, time.Minute))

	// Anonymous surface: first-run setup and login.
	e.GET("/setup", h.GetSetupStatus)
	e.POST("/setup", h.InitialSetup)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)

	api := e.Group("", middleware.Session(codec))

	api.GET("/bootstrap", h.Bootstrap)
	api.GET("/stats", h.DashboardStats)

	api.GET("/boards", h.ListBoards)
	api.POST("/boards", h.CreateBoard)
	api.GET("/boards/:id", h.GetBoard)
	api.DELETE("/boards/:id", h.DeleteBoard)
	api.GET("/boards/:id/tasks", h.ListBoardTasksSimple)
	api.GET("/boards/:id/users", h.ListEligibleBoardUsers)
	api.POST("/boards/:id/columns", h.CreateColumn)
	api.POST("/boards/:id/labels", h.CreateBoardLabel)

	api.PUT("/columns/order", h.UpdateColumnsOrder)
	api.PUT("/columns/:id", h.UpdateColumn)
	api.DELETE("/columns/:id", h.DeleteColumn)
	api.PUT("/columns/:id/order", h.UpdateColumnOrder)
	api.POST("/columns/:id/tasks", h.CreateTask)

	api.GET("/tasks/:id", h.GetTaskDetails)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.PUT("/tasks/:id/move", h.MoveTask)
	api.PUT("/tasks/:id/completion", h.ToggleTaskCompletion)
	api.PUT("/tasks/:id/assignee", h.AssignTask)
	api.POST("/tasks/:id/dependencies", h.AddDependency)
	api.DELETE("/tasks/:id/dependencies/:blockingId", h.RemoveDependency)
	api.POST("/tasks/:id/subtasks", h.CreateSubtask)
	api.POST("/tasks/:id/labels/:labelId", h.AttachTaskLabel)
	api.DELETE("/tasks/:id/labels/:labelId", h.DetachTaskLabel)

	api.PUT("/subtasks/:id", h.ToggleSubtask)
	api.DELETE("/subtasks/:id", h.DeleteSubtask)
	api.DELETE("/labels/:id", h.DeleteBoardLabel)

	api.GET("/me/tasks", h.ListMyTasks)
	api.GET("/deadlines", h.ListUpcomingDeadlines)
	api.GET("/activity/recent", h.RecentActivity)
	api.GET("/activity", h.AllActivity)

	api.GET("/users", h.ListUsers)
	api.GET("/users/:id/profile", h.GetUserProfile)
	api.GET("/settings/:key", h.GetSetting)

	admin := api.Group("/admin")
	admin.POST("/users", h.CreateUser)
	admin.DELETE("/users/:id", h.DeleteUser)
	admin.PUT("/users/:id/boards", h.UpdateUserBoards)
	admin.GET("/groups", h.ListGroups)
	admin.POST("/groups", h.CreateGroup)
	admin.PUT("/groups/:id", h.UpdateGroup)
	admin.DELETE("/groups/:id", h.DeleteGroup)
	admin.PUT("/settings/:key", h.UpdateSetting)
	admin.POST("/reset", h.ResetDatabase)
}
