package models

import "time"

// ProfilePhoto is a user's avatar. At most one live row exists per user;
// the repository enforces this with a transactional delete-then-insert.
type ProfilePhoto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Photo     string    `gorm:"not null" json:"photo"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (ProfilePhoto) TableName() string {
	return "profile_photos"
}
