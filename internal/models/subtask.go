package model

type Subtask struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	IsCompleted bool   `gorm:"not null;default:false" json:"isCompleted"`
	TaskID      string `gorm:"size:36;not null;index" json:"taskId"`
}
