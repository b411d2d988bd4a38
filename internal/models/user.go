// Package models contains data structures for the application's domain models.
package models

import "time"

// User is an author identity. The core never authenticates beyond the JWT
// subject; it only compares user IDs for equality.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
