package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) Create(ctx context.Context, boardID, name, color string) (*model.Label, error) {
	label := &model.Label{
		ID:      uuid.NewString(),
		Name:    name,
		Color:   color,
		BoardID: boardID,
	}

	if err := r.db.WithContext(ctx).Create(label).Error; err != nil {
		return nil, err
	}

	return label, nil
}

func (r *LabelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_labels WHERE label_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Label{}, "id = ?", id).Error
	})
}

// Attach and Detach toggle a label on a task. The join table is set-based,
// so both are idempotent.
func (r *LabelRepository) Attach(ctx context.Context, taskID, labelID string) error {
	task := model.Task{ID: taskID}
	return r.db.WithContext(ctx).Model(&task).Association("Labels").Append(&model.Label{ID: labelID})
}

func (r *LabelRepository) Detach(ctx context.Context, taskID, labelID string) error {
	task := model.Task{ID: taskID}
	return r.db.WithContext(ctx).Model(&task).Association("Labels").Delete(&model.Label{ID: labelID})
}
