package models

import (
	"time"

	"gorm.io/gorm"
)

// DeviceToken is a push-notification destination bound to a user and platform.
// The (user_id, token) pair is unique so re-registration upserts instead of
// duplicating rows.
type DeviceToken struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID   string `gorm:"type:varchar(128);uniqueIndex:idx_device_user_token" json:"user_id"`
	Token    string `gorm:"type:varchar(512);uniqueIndex:idx_device_user_token" json:"token"`
	Platform string `gorm:"type:varchar(20)" json:"platform"` // "ios", "android", "unknown"
}
