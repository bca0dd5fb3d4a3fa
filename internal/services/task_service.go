package services

import (
	"context"
	"fmt"
	"time"

	"flowt.dev/flowt/internal/auth"
	"flowt.dev/flowt/internal/constants"
	apperrors "flowt.dev/flowt/internal/errors"
	model "flowt.dev/flowt/internal/models"
	repository "flowt.dev/flowt/internal/repositories"
)

type TaskService struct {
	taskRepo     *repository.TaskRepository
	subtaskRepo  *repository.SubtaskRepository
	labelRepo    *repository.LabelRepository
	activityRepo *repository.ActivityRepository
	permissions  *PermissionService
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	subtaskRepo *repository.SubtaskRepository,
	labelRepo *repository.LabelRepository,
	activityRepo *repository.ActivityRepository,
	permissions *PermissionService,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		subtaskRepo:  subtaskRepo,
		labelRepo:    labelRepo,
		activityRepo: activityRepo,
		permissions:  permissions,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, caller auth.Caller, columnID, title string, order int) (*model.Task, error) {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermCreateTask); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	task, err := s.taskRepo.Create(ctx, columnID, title, order)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, fmt.Sprintf("created task %q", title), &task.ID, &caller.ID)

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, caller auth.Caller, taskID string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermDeleteTask); err != nil {
		return err
	}
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return apperrors.ErrTaskNotFound
	}
	return s.taskRepo.Delete(ctx, taskID)
}

// TaskPatch is the partial update the detail editor submits. Nil fields are
// untouched; ClearDueDate removes a deadline.
type TaskPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
}

func (s *TaskService) UpdateTask(ctx context.Context, caller auth.Caller, taskID string, patch TaskPatch) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditTask); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ClearDueDate {
		updates["due_date"] = nil
	} else if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}

	if err := s.taskRepo.UpdateFields(ctx, taskID, updates); err != nil {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// MoveTask persists a drag-and-drop move: the task's new column and its
// destination index. Sibling orders are left untouched. Dropping a task on
// its own position is a no-op with no persistence call.
func (s *TaskService) MoveTask(ctx context.Context, caller auth.Caller, taskID, columnID string, order int) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditTask); err != nil {
		return err
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return apperrors.ErrTaskNotFound
	}

	if task.ColumnID == columnID && task.Order == order {
		return nil
	}

	return s.taskRepo.UpdateColumnPosition(ctx, taskID, columnID, order)
}

// ToggleCompletion flips the completed flag. Completing is refused while
// anything still blocks the task; un-completing is always allowed.
func (s *TaskService) ToggleCompletion(ctx context.Context, caller auth.Caller, taskID string, isCompleted bool) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditTask); err != nil {
		return err
	}

	if isCompleted {
		blocked, err := s.taskRepo.CountBlockedBy(ctx, taskID)
		if err != nil {
			return err
		}
		if blocked > 0 {
			return apperrors.ErrTaskBlocked
		}
	}

	if err := s.taskRepo.SetCompleted(ctx, taskID, isCompleted); err != nil {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) AssignTask(ctx context.Context, caller auth.Caller, taskID string, assigneeID *string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditTask); err != nil {
		return err
	}

	if err := s.taskRepo.Assign(ctx, taskID, assigneeID); err != nil {
		return apperrors.ErrTaskNotFound
	}

	action := "assigned a user to task"
	if assigneeID == nil {
		action = "unassigned user from task"
	}
	s.logActivity(ctx, action, &taskID, &caller.ID)

	return nil
}

func (s *TaskService) TaskDetails(ctx context.Context, taskID string) (*TaskDetail, error) {
	task, err := s.taskRepo.FindDetail(ctx, taskID)
	if err != nil {
		return nil, apperrors.ErrTaskNotFound
	}

	detail := &TaskDetail{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Order:       task.Order,
		IsCompleted: task.IsCompleted,
		DueDate:     task.DueDate,
		ColumnID:    task.ColumnID,
		Assignee:    userRef(task.Assignee),
		Labels:      task.Labels,
		Subtasks:    task.Subtasks,
		BlockedBy:   taskRefs(task.BlockedBy),
		Blocking:    taskRefs(task.Blocking),
	}
	if detail.Labels == nil {
		detail.Labels = []model.Label{}
	}
	if detail.Subtasks == nil {
		detail.Subtasks = []model.Subtask{}
	}
	if task.Column != nil {
		detail.ColumnTitle = task.Column.Title
		detail.BoardID = task.Column.BoardID
	}
	for i := range task.Activity {
		entry := ActivityEntry{
			ID:        task.Activity[i].ID,
			Action:    task.Activity[i].Action,
			Timestamp: task.Activity[i].Timestamp,
			TaskID:    task.Activity[i].TaskID,
			User:      userRef(task.Activity[i].User),
		}
		detail.Activity = append(detail.Activity, entry)
	}
	return detail, nil
}

func (s *TaskService) CreateSubtask(ctx context.Context, caller auth.Caller, taskID, title string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditTask); err != nil {
		return err
	}
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return apperrors.ErrTaskNotFound
	}
	_, err := s.subtaskRepo.Create(ctx, taskID, title)
	return err
}

// ToggleSubtask converts persistence failures into the uniform error shape
// instead of surfacing them raw.
func (s *TaskService) ToggleSubtask(ctx context.Context, subtaskID string, isCompleted bool) error {
	if err := s.subtaskRepo.SetCompleted(ctx, subtaskID, isCompleted); err != nil {
		return apperrors.ErrSubtaskNotFound
	}
	return nil
}

func (s *TaskService) DeleteSubtask(ctx context.Context, caller auth.Caller, subtaskID string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditTask); err != nil {
		return err
	}
	return s.subtaskRepo.Delete(ctx, subtaskID)
}

func (s *TaskService) ToggleTaskLabel(ctx context.Context, caller auth.Caller, taskID, labelID string, add bool) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditTask); err != nil {
		return err
	}

	if add {
		return s.labelRepo.Attach(ctx, taskID, labelID)
	}
	return s.labelRepo.Detach(ctx, taskID, labelID)
}

func (s *TaskService) CreateBoardLabel(ctx context.Context, caller auth.Caller, boardID, name, color string) (*model.Label, error) {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditBoard); err != nil {
		return nil, err
	}
	return s.labelRepo.Create(ctx, boardID, name, color)
}

func (s *TaskService) DeleteBoardLabel(ctx context.Context, caller auth.Caller, labelID string) error {
	if err := s.permissions.Require(ctx, caller.ID, constants.PermEditBoard); err != nil {
		return err
	}
	return s.labelRepo.Delete(ctx, labelID)
}

// ListUserTasks returns the caller's open assigned tasks.
func (s *TaskService) ListUserTasks(ctx context.Context, caller auth.Caller) ([]AssignedTask, error) {
	tasks, err := s.taskRepo.ListForAssignee(ctx, caller.ID, constants.DoneColumnTitle)
	if err != nil {
		return nil, err
	}
	return assignedTasks(tasks), nil
}

// UpcomingDeadlines lists incomplete tasks due inside the requested range.
// Unknown ranges behave like "all".
func (s *TaskService) UpcomingDeadlines(ctx context.Context, caller auth.Caller, deadlineRange string) ([]AssignedTask, error) {
	now := time.Now()
	var gte, lte *time.Time

	switch deadlineRange {
	case constants.RangeOverdue:
		lte = &now
	case constants.RangeDay:
		end := now.Add(24 * time.Hour)
		gte, lte = &now, &end
	case constants.RangeWeek:
		end := now.Add(7 * 24 * time.Hour)
		gte, lte = &now, &end
	case constants.RangeMonth:
		end := now.Add(30 * 24 * time.Hour)
		gte, lte = &now, &end
	}

	tasks, err := s.taskRepo.ListUpcoming(ctx, caller.ID, gte, lte, 10)
	if err != nil {
		return nil, err
	}
	return assignedTasks(tasks), nil
}

func (s *TaskService) ListBoardTasksSimple(ctx context.Context, boardID string) ([]repository.BoardTaskRow, error) {
	return s.taskRepo.ListBoardSimple(ctx, boardID)
}

func assignedTasks(tasks []model.Task) []AssignedTask {
	out := make([]AssignedTask, 0, len(tasks))
	for i := range tasks {
		item := AssignedTask{
			ID:      tasks[i].ID,
			Title:   tasks[i].Title,
			DueDate: tasks[i].DueDate,
			Labels:  tasks[i].Labels,
		}
		if tasks[i].Column != nil {
			item.ColumnTitle = tasks[i].Column.Title
			if tasks[i].Column.Board != nil {
				item.BoardID = tasks[i].Column.Board.ID
				item.BoardTitle = tasks[i].Column.Board.Title
			}
		}
		out = append(out, item)
	}
	return out
}

// logActivity is best effort; a failed audit write never fails the
// operation it annotates.
func (s *TaskService) logActivity(ctx context.Context, action string, taskID, userID *string) {
	_ = s.activityRepo.Log(ctx, action, taskID, userID)
}
