// Package logger writes auth activity entries to the database. Entries are
// best effort: a failed write never fails the request that produced it.
package logger

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const AuthLogsTableName = "auth_logs"

// Event names recorded by the auth flow.
const (
	EventSignup         = "signup"
	EventSignin         = "signin"
	EventSignout        = "signout"
	EventPasswordChange = "password_change"
)

// AuthLog is one audit row.
type AuthLog struct {
	ID        uint           `gorm:"primaryKey"`
	Timestamp time.Time      `gorm:"index"`
	Event     string         `gorm:"index"`
	UserName  string         `gorm:"index"`
	Fields    datatypes.JSON `gorm:"type:jsonb"`
}

// TableName overrides the table name used by AuthLog
func (AuthLog) TableName() string {
	return AuthLogsTableName
}

// Logger records auth activity.
type Logger struct {
	db *gorm.DB
}

// New creates a new Logger instance
func New(db *gorm.DB) (*Logger, error) {
	if err := db.AutoMigrate(&AuthLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate AuthLog: %v", err)
	}
	return &Logger{db: db}, nil
}

// Log inserts one audit entry. The plaintext password must never appear in
// fields; callers pass identifiers only.
func (l *Logger) Log(event, userName string, fields map[string]interface{}) error {
	var fieldsJSON datatypes.JSON
	if len(fields) > 0 {
		jsonBytes, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("failed to marshal fields: %v", err)
		}
		fieldsJSON = datatypes.JSON(jsonBytes)
	}

	entry := AuthLog{
		Timestamp: time.Now(),
		Event:     event,
		UserName:  userName,
		Fields:    fieldsJSON,
	}

	if err := l.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to insert auth log entry: %v", err)
	}

	return nil
}
