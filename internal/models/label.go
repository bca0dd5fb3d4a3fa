package model

type Label struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Color   string `gorm:"not null" json:"color"`
	BoardID string `gorm:"size:36;not null;index" json:"boardId"`

	Tasks []Task `gorm:"many2many:task_labels" json:"-"`
}
