package models

import "time"

// Comment belongs to a post. Post and author references are nullable at the
// schema level but are always stamped server-side on creation; comments are
// immutable once created and are removed when their post is deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    *uint     `gorm:"index" json:"post_id"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	AuthorID  *uint     `gorm:"index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}
