package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, columnID, title string, order int) (*model.Task, error) {
	task := &model.Task{
		ID:       uuid.NewString(),
		Title:    title,
		Order:    order,
		ColumnID: columnID,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindDetail loads everything the task detail view shows: labels, subtasks,
// activity with acting users, assignee, column context and both sides of
// the dependency relation.
func (r *TaskRepository) FindDetail(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Labels").
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Activity", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp desc")
		}).
		Preload("Activity.User").
		Preload("Assignee").
		Preload("Column").
		Preload("Blocking").
		Preload("Blocking.Column").
		Preload("BlockedBy").
		Preload("BlockedBy.Column").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateFields applies a partial update (title, description, due date).
func (r *TaskRepository) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateColumnPosition writes only the moved task's column and position.
// Sibling tasks keep their stored order values.
func (r *TaskRepository) UpdateColumnPosition(ctx context.Context, id, columnID string, order int) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{"column_id": columnID, "position": order})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id string, isCompleted bool) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Update("is_completed", isCompleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) Assign(ctx context.Context, id string, assigneeID *string) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Update("assignee_id", assigneeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a task with its subtasks, dependency edges and label
// links. Activity entries survive with their task reference nulled.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.Subtask{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_dependencies WHERE task_id = ? OR blocking_task_id = ?", id, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.ActivityLog{}).Where("task_id = ?", id).Update("task_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, "id = ?", id).Error
	})
}

// AddDependencyEdge inserts the directed edge task -> blocking task. The
// join table is set-based, so re-adding an existing edge is a no-op.
func (r *TaskRepository) AddDependencyEdge(ctx context.Context, taskID, blockingTaskID string) error {
	task := model.Task{ID: taskID}
	return r.db.WithContext(ctx).Model(&task).Association("BlockedBy").Append(&model.Task{ID: blockingTaskID})
}

// RemoveDependencyEdge removes the edge unconditionally; removing a missing
// edge is not an error.
func (r *TaskRepository) RemoveDependencyEdge(ctx context.Context, taskID, blockingTaskID string) error {
	task := model.Task{ID: taskID}
	return r.db.WithContext(ctx).Model(&task).Association("BlockedBy").Delete(&model.Task{ID: blockingTaskID})
}

// ListBlockedByIDs returns the ids of tasks directly blocking the given
// task.
func (r *TaskRepository) ListBlockedByIDs(ctx context.Context, taskID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("task_dependencies").
		Where("task_id = ?", taskID).
		Pluck("blocking_task_id", &ids).Error
	return ids, err
}

func (r *TaskRepository) CountBlockedBy(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("task_dependencies").
		Where("task_id = ?", taskID).
		Count(&count).Error
	return count, err
}

// ListForAssignee returns a user's tasks outside the done column, in board
// order, with column/board and label context.
func (r *TaskRepository) ListForAssignee(ctx context.Context, userID, doneColumnTitle string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Column").
		Preload("Column.Board").
		Preload("Labels").
		Where("assignee_id = ?", userID).
		Where("column_id IN (?)", r.db.Table("columns").Select("id").Where("title <> ?", doneColumnTitle)).
		Order("position asc, id asc").
		Find(&tasks).Error
	return tasks, err
}

// ListUpcoming returns incomplete tasks with a due date inside the window
// that are visible to the user (assigned to them, or on a board they own or
// belong to). Earliest deadline first, capped at limit.
func (r *TaskRepository) ListUpcoming(ctx context.Context, userID string, gte, lte *time.Time, limit int) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Column").
		Preload("Column.Board").
		Where("due_date IS NOT NULL").
		Where("is_completed = ?", false)

	if gte != nil {
		query = query.Where("due_date >= ?", *gte)
	}
	if lte != nil {
		query = query.Where("due_date <= ?", *lte)
	}

	visibleColumns := r.db.Table("columns").Select("columns.id").
		Joins("JOIN boards ON boards.id = columns.board_id").
		Where("boards.owner_id = ?", userID).
		Or("boards.id IN (?)", r.db.Table("board_members").Select("board_id").Where("user_id = ?", userID))

	query = query.Where(
		r.db.Where("assignee_id = ?", userID).Or("column_id IN (?)", visibleColumns),
	)

	var tasks []model.Task
	err := query.Order("due_date asc").Limit(limit).Find(&tasks).Error
	return tasks, err
}

// BoardTaskRow is the minimal projection the dependency picker needs.
type BoardTaskRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ColumnTitle string `json:"columnTitle"`
}

func (r *TaskRepository) ListBoardSimple(ctx context.Context, boardID string) ([]BoardTaskRow, error) {
	var rows []BoardTaskRow
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.id as id, tasks.title as title, columns.title as column_title").
		Joins("JOIN columns ON columns.id = tasks.column_id").
		Where("columns.board_id = ?", boardID).
		Order("columns.position asc, tasks.position asc").
		Scan(&rows).Error
	return rows, err
}

func (r *TaskRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	return count, err
}

// CountInColumnsTitled counts tasks sitting in columns with the given title
// across all boards. The dashboard treats the done column as completion.
func (r *TaskRepository) CountInColumnsTitled(ctx context.Context, columnTitle string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tasks").
		Joins("JOIN columns ON columns.id = tasks.column_id").
		Where("columns.title = ?", columnTitle).
		Count(&count).Error
	return count, err
}
