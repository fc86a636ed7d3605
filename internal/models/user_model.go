// Package models contains the database models for the Geocheck app
package models

import (
	"time"
)

const UsersTableName = "users"

// User is a registered account. Name is immutable after creation and unique
// by constraint; PasswordHash is the opaque bcrypt output.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return UsersTableName
}
