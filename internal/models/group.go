package models

// Group is a topical community that posts may optionally belong to.
// Its slug is the stable public identifier and never changes after creation.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "groups"
}
