package models

import (
	"time"
)

const CheckinsTableName = "checkins"

// Checkin is a user comment tied to a location. The owner is referenced by
// user_id, not by name; display names are resolved by a join at read time.
// CreatedAt is assigned server-side at insert, never client-supplied.
type Checkin struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	LocationID uint      `gorm:"index;not null" json:"location_id"`
	Comment    string    `gorm:"not null" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"time"`
}

func (Checkin) TableName() string {
	return CheckinsTableName
}

// CheckinWithUser is the read shape of a check-in, joined to users for the
// owner's display name.
type CheckinWithUser struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	LocationID uint      `json:"location_id"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"time"`
}
