package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus tracks a payment session from order creation to settlement
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentSession records one attempted sponsorship payment. One row is created
// per gateway order; the row is never deleted so it doubles as an audit trail.
type PaymentSession struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID       string        `gorm:"type:varchar(128);index" json:"user_id"`
	CampID       string        `gorm:"type:uuid;index" json:"camp_id"`
	Amount       float64       `gorm:"type:decimal(15,2)" json:"amount"`
	Currency     string        `gorm:"type:varchar(10)" json:"currency"`
	SponsorName  string        `gorm:"type:varchar(255)" json:"sponsor_name"`
	SponsorEmail string        `gorm:"type:varchar(255)" json:"sponsor_email"`
	OrderID      string        `gorm:"type:varchar(100);uniqueIndex" json:"order_id"`
	Status       PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
