package models

import "time"

// Post is a published entry. Exactly one author owns it; the group reference
// is optional and survives group deletion as NULL. CreatedAt is assigned by
// the server on insert and never updated afterwards.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID  *uint  `gorm:"index" json:"group_id"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	// ImageRef is the opaque reference returned by the external blob storage.
	ImageRef  string    `gorm:"size:255" json:"image_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}

// Preview returns the first limit runes of the post text, used as a display
// title for listings.
func (p *Post) Preview(limit int) string {
	runes := []rune(p.Text)
	if limit <= 0 || len(runes) <= limit {
		return p.Text
	}
	return string(runes[:limit])
}
