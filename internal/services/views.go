package services

import (
	"time"

	model "flowt.dev/flowt/internal/models"
)

// Projection types returned by the query surface. Handlers serialize these
// directly; nothing re-shapes them downstream.

type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type TaskRef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ColumnTitle string `json:"columnTitle"`
}

type ColumnSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Order     int    `json:"order"`
	TaskCount int64  `json:"taskCount"`
}

type BoardSummary struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	OwnerID string          `json:"ownerId"`
	Columns []ColumnSummary `json:"columns"`
}

type TaskCard struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Order          int           `json:"order"`
	IsCompleted    bool          `json:"isCompleted"`
	DueDate        *time.Time    `json:"dueDate"`
	ColumnID       string        `json:"columnId"`
	Assignee       *UserRef      `json:"assignee"`
	Labels         []model.Label `json:"labels"`
	SubtaskCount   int           `json:"subtaskCount"`
	BlockedByCount int           `json:"blockedByCount"`
}

type ColumnDetail struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Order int        `json:"order"`
	Tasks []TaskCard `json:"tasks"`
}

type BoardDetail struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	OwnerID string         `json:"ownerId"`
	Labels  []model.Label  `json:"labels"`
	Columns []ColumnDetail `json:"columns"`
}

type ActivityEntry struct {
	ID         string     `json:"id"`
	Action     string     `json:"action"`
	Timestamp  time.Time  `json:"timestamp"`
	User       *UserRef   `json:"user"`
	TaskID     *string    `json:"taskId"`
	TaskTitle  string     `json:"taskTitle,omitempty"`
	BoardID    string     `json:"boardId,omitempty"`
	BoardTitle string     `json:"boardTitle,omitempty"`
}

type TaskDetail struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Order       int             `json:"order"`
	IsCompleted bool            `json:"isCompleted"`
	DueDate     *time.Time      `json:"dueDate"`
	ColumnID    string          `json:"columnId"`
	ColumnTitle string          `json:"columnTitle"`
	BoardID     string          `json:"boardId"`
	Assignee    *UserRef        `json:"assignee"`
	Labels      []model.Label   `json:"labels"`
	Subtasks    []model.Subtask `json:"subtasks"`
	Activity    []ActivityEntry `json:"activity"`
	BlockedBy   []TaskRef       `json:"blockedBy"`
	Blocking    []TaskRef       `json:"blocking"`
}

type DashboardStats struct {
	TotalTasks     int64  `json:"totalTasks"`
	CompletedTasks int64  `json:"completedTasks"`
	PendingTasks   int64  `json:"pendingTasks"`
	Efficiency     string `json:"efficiency"`
}

type AssignedTask struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	DueDate     *time.Time    `json:"dueDate"`
	ColumnTitle string        `json:"columnTitle"`
	BoardID     string        `json:"boardId"`
	BoardTitle  string        `json:"boardTitle"`
	Labels      []model.Label `json:"labels"`
}

type UserProfile struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	IsAdmin       bool           `json:"isAdmin"`
	GroupName     string         `json:"groupName,omitempty"`
	AssignedTasks []AssignedTask `json:"assignedTasks"`
}

func userRef(u *model.User) *UserRef {
	if u == nil || u.ID == "" {
		return nil
	}
	return &UserRef{ID: u.ID, Username: u.Username}
}

func taskRefs(tasks []model.Task) []TaskRef {
	refs := make([]TaskRef, 0, len(tasks))
	for i := range tasks {
		ref := TaskRef{ID: tasks[i].ID, Title: tasks[i].Title}
		if tasks[i].Column != nil {
			ref.ColumnTitle = tasks[i].Column.Title
		}
		refs = append(refs, ref)
	}
	return refs
}
