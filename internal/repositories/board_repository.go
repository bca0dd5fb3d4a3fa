package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowt.dev/flowt/internal/constants"
	model "flowt.dev/flowt/internal/models"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create inserts a board seeded with the default columns.
func (r *BoardRepository) Create(ctx context.Context, title, ownerID string) (*model.Board, error) {
	board := &model.Board{
		ID:      uuid.NewString(),
		Title:   title,
		OwnerID: ownerID,
	}

	for i, columnTitle := range constants.DefaultColumns {
		board.Columns = append(board.Columns, model.Column{
			ID:    uuid.NewString(),
			Title: columnTitle,
			Order: i,
		})
	}

	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return nil, err
	}

	return board, nil
}

func (r *BoardRepository) FindByID(ctx context.Context, id string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindWithData loads the full nested board payload: labels plus ordered
// columns, each with ordered tasks carrying labels, assignee, subtasks and
// blocking context. Reads tie-break order on id so duplicate positions from
// concurrent writers still render deterministically.
func (r *BoardRepository) FindWithData(ctx context.Context, id string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Preload("Labels").
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Preload("Columns.Tasks.Labels").
		Preload("Columns.Tasks.Assignee").
		Preload("Columns.Tasks.Subtasks").
		Preload("Columns.Tasks.BlockedBy").
		First(&board, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// ListAll is the administrator view: every board with column task counts.
func (r *BoardRepository) ListAll(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Order("created_at asc").
		Find(&boards).Error
	return boards, err
}

// ListForUser returns boards the user owns or is a member of.
func (r *BoardRepository) ListForUser(ctx context.Context, userID string) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Where("owner_id = ?", userID).
		Or("id IN (?)", r.db.Table("board_members").Select("board_id").Where("user_id = ?", userID)).
		Order("created_at asc").
		Find(&boards).Error
	return boards, err
}

// CountTasksByColumn returns the task count per column for a set of boards.
func (r *BoardRepository) CountTasksByColumn(ctx context.Context, boardIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(boardIDs) == 0 {
		return counts, nil
	}

	type row struct {
		ColumnID string
		Total    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.column_id as column_id, count(*) as total").
		Joins("JOIN columns ON columns.id = tasks.column_id").
		Where("columns.board_id IN ?", boardIDs).
		Group("tasks.column_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.ColumnID] = r.Total
	}
	return counts, nil
}

// Delete removes a board with everything it owns: tasks (with their
// subtasks, dependency edges and label links), columns, labels and
// membership rows. One transaction so a partial failure leaves nothing
// half-deleted.
func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Table("tasks").Select("tasks.id").
			Joins("JOIN columns ON columns.id = tasks.column_id").
			Where("columns.board_id = ?", id)

		if err := tx.Exec("DELETE FROM subtasks WHERE task_id IN (?)", taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_dependencies WHERE task_id IN (?) OR blocking_task_id IN (?)", taskIDs, taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id IN (?)", taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tasks WHERE id IN (?)", taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&model.Column{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&model.Label{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM board_members WHERE board_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Board{}, "id = ?", id).Error
	})
}
