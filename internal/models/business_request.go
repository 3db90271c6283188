package models

import (
	"time"

	"gorm.io/gorm"
)

// BusinessRequestStatus is the moderation state of a partnership request
type BusinessRequestStatus string

const (
	BusinessRequestStatusPending     BusinessRequestStatus = "pending"
	BusinessRequestStatusUnderReview BusinessRequestStatus = "under_review"
	BusinessRequestStatusApproved    BusinessRequestStatus = "approved"
	BusinessRequestStatusRejected    BusinessRequestStatus = "rejected"
)

// BusinessRequest is a request from a business to host or fund a medical camp
type BusinessRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	BusinessName  string                `gorm:"type:varchar(255);not null" json:"business_name"`
	CampType      string                `gorm:"type:varchar(100)" json:"camp_type"`
	PreferredDate string                `gorm:"type:varchar(20)" json:"preferred_date,omitempty"`
	ContactEmail  string                `gorm:"type:varchar(255)" json:"contact_email"`
	ContactPhone  string                `gorm:"type:varchar(50)" json:"contact_phone,omitempty"`
	Address       string                `gorm:"type:text" json:"address,omitempty"`
	Notes         string                `gorm:"type:text" json:"notes,omitempty"`
	Status        BusinessRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relationships
	Proposals []Proposal `gorm:"foreignKey:BusinessRequestID" json:"proposals,omitempty"`
}
