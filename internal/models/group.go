package model

// Group bundles permission keys for its member users. Permissions is a
// JSON-serialized list of permission-key strings, matching the admin form
// submission shape.
type Group struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Permissions string `gorm:"not null;default:'[]'" json:"permissions"`

	Users []User `gorm:"foreignKey:GroupID" json:"users,omitempty"`
}
