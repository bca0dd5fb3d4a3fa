package model

import "time"

type Board struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	OwnerID string `gorm:"size:36;not null;index" json:"ownerId"`

	Owner   *User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []User   `gorm:"many2many:board_members" json:"members,omitempty"`
	Columns []Column `gorm:"foreignKey:BoardID" json:"columns,omitempty"`
	Labels  []Label  `gorm:"foreignKey:BoardID" json:"labels,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
