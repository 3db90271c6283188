package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampStatus represents the moderation/lifecycle state of a camp listing
type CampStatus string

const (
	CampStatusPending   CampStatus = "pending"
	CampStatusApproved  CampStatus = "approved"
	CampStatusActive    CampStatus = "active"
	CampStatusCompleted CampStatus = "completed"
	CampStatusCancelled CampStatus = "cancelled"
)

// Camp represents a community medical camp listing
type Camp struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title              string     `gorm:"type:varchar(255);not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	Date               string     `gorm:"type:varchar(20)" json:"date"` // e.g. "2024-02-15"
	Time               string     `gorm:"type:varchar(20)" json:"time,omitempty"`
	Location           string     `gorm:"type:varchar(255)" json:"location"`
	DoctorName         string     `gorm:"type:varchar(255)" json:"doctor_name"`
	ContactEmail       string     `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	ContactPhone       string     `gorm:"type:varchar(50)" json:"contact_phone,omitempty"`
	SponsorshipGoal    float64    `gorm:"type:decimal(15,2)" json:"sponsorship_goal"`
	CurrentSponsorship float64    `gorm:"type:decimal(15,2);default:0" json:"current_sponsorship"`
	Status             CampStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedBy          string     `gorm:"type:varchar(128);index" json:"created_by,omitempty"`

	// Relationships
	Sponsorships []Sponsorship `gorm:"foreignKey:CampID" json:"sponsorships,omitempty"`
}

// BeforeCreate assigns a UUID primary key
func (c *Camp) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
