package repository

import (
	"context"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Reset wipes every table, dependents first. Settings survive so branding
// carries across a reinstall. Logs out everyone by deleting all users.
func (r *MaintenanceRepository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM activity_logs",
			"DELETE FROM subtasks",
			"DELETE FROM task_dependencies",
			"DELETE FROM task_labels",
			"DELETE FROM labels",
			"DELETE FROM tasks",
			"DELETE FROM columns",
			"DELETE FROM board_members",
			"DELETE FROM boards",
			"DELETE FROM groups",
			"DELETE FROM users",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
