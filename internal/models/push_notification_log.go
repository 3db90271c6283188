package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// PushNotificationLog summarizes one dispatch batch: what was sent, to which
// tokens, and how many deliveries succeeded or failed.
type PushNotificationLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID       string          `gorm:"type:varchar(128);index" json:"user_id"`
	Title        string          `gorm:"type:varchar(255)" json:"title"`
	Body         string          `gorm:"type:text" json:"body"`
	Data         json.RawMessage `gorm:"type:jsonb" json:"data,omitempty"`
	SentAt       time.Time       `json:"sent_at"`
	SuccessCount int             `json:"success_count"`
	FailCount    int             `json:"fail_count"`
	DeviceTokens json.RawMessage `gorm:"type:jsonb" json:"device_tokens"`
}
