package models

import (
	"time"

	"gorm.io/gorm"
)

// Sponsorship is a confirmed monetary contribution to a camp. Rows are created
// only after the gateway payment has been verified, by copying the identity
// and amount fields from the matching PaymentSession.
type Sponsorship struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	CampID       string  `gorm:"type:uuid;index" json:"camp_id"`
	SponsorName  string  `gorm:"type:varchar(255)" json:"sponsor_name"`
	SponsorEmail string  `gorm:"type:varchar(255)" json:"sponsor_email,omitempty"`
	SponsorPhone string  `gorm:"type:varchar(50)" json:"sponsor_phone,omitempty"`
	Amount       float64 `gorm:"type:decimal(15,2)" json:"amount"`
	Message      string  `gorm:"type:text" json:"message,omitempty"`
}
