package models

import "time"

// Follow is a directed edge: UserID receives AuthorID's posts in their
// follow feed. The (user, author) pair is unique so the edge is idempotent.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_follow_pair,unique;index" json:"user_id"`
	AuthorID  uint      `gorm:"not null;index:idx_follow_pair,unique;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
