package model

// Column order defines left-to-right position within a board. Values stay
// monotonic but are not guaranteed contiguous; reads tie-break on id.
type Column struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Order   int    `gorm:"column:position;not null" json:"order"`
	BoardID string `gorm:"size:36;not null;index" json:"boardId"`

	Board *Board `gorm:"foreignKey:BoardID" json:"-"`
	Tasks []Task `gorm:"foreignKey:ColumnID" json:"tasks,omitempty"`
}
