package model

import "time"

type User struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Password string  `gorm:"not null" json:"-"`
	IsAdmin  bool    `gorm:"not null;default:false" json:"isAdmin"`
	GroupID  *string `gorm:"size:36;index" json:"groupId"`

	Group         *Group  `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	OwnedBoards   []Board `gorm:"foreignKey:OwnerID" json:"-"`
	MemberBoards  []Board `gorm:"many2many:board_members" json:"-"`
	AssignedTasks []Task  `gorm:"foreignKey:AssigneeID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
