package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, boardID, title string, order int) (*model.Column, error) {
	column := &model.Column{
		ID:      uuid.NewString(),
		Title:   title,
		Order:   order,
		BoardID: boardID,
	}

	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		return nil, err
	}

	return column, nil
}

func (r *ColumnRepository) FindByID(ctx context.Context, id string) (*model.Column, error) {
	var column model.Column
	err := r.db.WithContext(ctx).First(&column, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepository) Rename(ctx context.Context, id, title string) error {
	result := r.db.WithContext(ctx).Model(&model.Column{}).Where("id = ?", id).Update("title", title)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ColumnRepository) UpdateOrder(ctx context.Context, id string, order int) error {
	result := r.db.WithContext(ctx).Model(&model.Column{}).Where("id = ?", id).Update("position", order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrders renumbers columns 0..N-1 in the given sequence. All updates
// run in one transaction so a failure mid-batch cannot leave the board with
// a partially applied ordering.
func (r *ColumnRepository) UpdateOrders(ctx context.Context, columnIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, id := range columnIDs {
			if err := tx.Model(&model.Column{}).Where("id = ?", id).Update("position", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a column and the tasks it holds, including their subtasks,
// dependency edges and label links.
func (r *ColumnRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Table("tasks").Select("id").Where("column_id = ?", id)

		if err := tx.Exec("DELETE FROM subtasks WHERE task_id IN (?)", taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_dependencies WHERE task_id IN (?) OR blocking_task_id IN (?)", taskIDs, taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id IN (?)", taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("column_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Column{}, "id = ?", id).Error
	})
}
