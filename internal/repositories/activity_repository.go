package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends one audit entry. The trail is append-only; nothing updates or
// deletes entries except a full database reset.
func (r *ActivityRepository) Log(ctx context.Context, action string, taskID, userID *string) error {
	entry := &model.ActivityLog{
		ID:        uuid.NewString(),
		Action:    action,
		Timestamp: time.Now().UTC(),
		TaskID:    taskID,
		UserID:    userID,
	}

	return r.db.WithContext(ctx).Create(entry).Error
}

// ListRecent returns the newest entries with task, column, board and user
// context for the feed.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Task.Column").
		Preload("Task.Column.Board").
		Preload("User").
		Order("timestamp desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
