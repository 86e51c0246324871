package models

import "time"

// Comment is a reply on a post. Author and post are bound server-side at the
// mutation boundary and are never taken from the submitter's payload.
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	PostID   uint      `gorm:"not null;index" json:"post_id"`
	Post     *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
}
