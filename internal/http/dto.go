package http

import "time"

// Request payloads. One explicit struct per operation; nothing binds into
// loosely-typed maps.

type SetupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateBoardRequest struct {
	Title string `json:"title"`
}

type CreateColumnRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

type UpdateColumnRequest struct {
	Title string `json:"title"`
}

type UpdateColumnOrderRequest struct {
	Order int `json:"order"`
}

type UpdateColumnsOrderRequest struct {
	ColumnIDs []string `json:"columnIds"`
}

type CreateTaskRequest struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	DueDate      *time.Time `json:"dueDate"`
	ClearDueDate bool       `json:"clearDueDate"`
}

type MoveTaskRequest struct {
	ColumnID string `json:"columnId"`
	Order    int    `json:"order"`
}

type ToggleCompletionRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

type AssignTaskRequest struct {
	// UserID nil means unassign.
	UserID *string `json:"userId"`
}

type AddDependencyRequest struct {
	BlockingTaskID string `json:"blockingTaskId"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title"`
}

type ToggleSubtaskRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

type CreateLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// GroupID is a group id, empty, or the "admin" sentinel.
	GroupID string `json:"groupId"`
}

type GroupRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type UpdateUserBoardsRequest struct {
	BoardIDs []string `json:"boardIds"`
}

type UpdateSettingRequest struct {
	Value string `json:"value"`
}
