package model

import "time"

type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Order       int        `gorm:"column:position;not null" json:"order"`
	IsCompleted bool       `gorm:"not null;default:false" json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
	ColumnID    string     `gorm:"size:36;not null;index" json:"columnId"`
	AssigneeID  *string    `gorm:"size:36;index" json:"assigneeId"`

	Column   *Column `gorm:"foreignKey:ColumnID" json:"-"`
	Assignee *User   `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Labels   []Label `gorm:"many2many:task_labels" json:"labels,omitempty"`

	// BlockedBy holds the tasks that must complete before this one may;
	// Blocking is the inverse side of the same join table.
	BlockedBy []Task `gorm:"many2many:task_dependencies;joinForeignKey:TaskID;joinReferences:BlockingTaskID" json:"blockedBy,omitempty"`
	Blocking  []Task `gorm:"many2many:task_dependencies;joinForeignKey:BlockingTaskID;joinReferences:TaskID" json:"blocking,omitempty"`

	Subtasks []Subtask     `gorm:"foreignKey:TaskID" json:"subtasks,omitempty"`
	Activity []ActivityLog `gorm:"foreignKey:TaskID" json:"activity,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
