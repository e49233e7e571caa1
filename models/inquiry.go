package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry statuses, advanced by vendor actions
const (
	InquiryStatusPending   = "pending"
	InquiryStatusAccepted  = "accepted"
	InquiryStatusRejected  = "rejected"
	InquiryStatusScheduled = "scheduled"
	InquiryStatusCompleted = "completed"
)

// Inquiry represents a customer asking a store about a specific design
type Inquiry struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	CustomerID string         `gorm:"not null;index" json:"customer_id"` // foreign key to users table
	Customer   User           `gorm:"foreignKey:CustomerID" json:"customer"`
	StoreID    string         `gorm:"not null;index" json:"store_id"` // foreign key to stores table
	Store      Store          `gorm:"foreignKey:StoreID" json:"-"`
	DesignID   string         `gorm:"not null;index" json:"design_id"` // foreign key to designs table
	Design     Design         `gorm:"foreignKey:DesignID" json:"design"`
	Message    string         `gorm:"type:text" json:"message"`
	Status     string         `gorm:"not null;default:'pending'" json:"status"` // pending, accepted, rejected, scheduled, completed
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Inquiry model
func (Inquiry) TableName() string {
	return "inquiries"
}
