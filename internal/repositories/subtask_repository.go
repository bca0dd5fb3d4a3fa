package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

type SubtaskRepository struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) Create(ctx context.Context, taskID, title string) (*model.Subtask, error) {
	subtask := &model.Subtask{
		ID:     uuid.NewString(),
		Title:  title,
		TaskID: taskID,
	}

	if err := r.db.WithContext(ctx).Create(subtask).Error; err != nil {
		return nil, err
	}

	return subtask, nil
}

func (r *SubtaskRepository) SetCompleted(ctx context.Context, id string, isCompleted bool) error {
	result := r.db.WithContext(ctx).Model(&model.Subtask{}).Where("id = ?", id).Update("is_completed", isCompleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SubtaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Subtask{}, "id = ?", id).Error
}
