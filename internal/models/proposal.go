package models

import (
	"time"

	"gorm.io/gorm"
)

// Proposal is an organizer's offer to run the camp described by a business request
type Proposal struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	BusinessRequestID uint   `gorm:"index" json:"business_request_id"`
	ProposerName      string `gorm:"type:varchar(255)" json:"proposer_name"`
	Details           string `gorm:"type:text" json:"details"`
}
