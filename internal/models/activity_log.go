package model

import "time"

// ActivityLog is an append-only audit trail. Task and user references are
// optional so entries survive the deletion of either.
type ActivityLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Action    string    `gorm:"not null" json:"action"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	TaskID    *string   `gorm:"size:36;index" json:"taskId"`
	UserID    *string   `gorm:"size:36" json:"userId"`

	Task *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
