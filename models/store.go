package models

import (
	"time"

	"gorm.io/gorm"
)

// Store approval statuses, set by admin review
const (
	StoreStatusPending  = "pending"
	StoreStatusApproved = "approved"
	StoreStatusRejected = "rejected"
)

// Store represents a jewelry boutique owned by a single vendor
type Store struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	VendorID    string         `gorm:"not null;index" json:"vendor_id"` // foreign key to users table
	Vendor      User           `gorm:"foreignKey:VendorID" json:"vendor"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	City        string         `gorm:"not null;index" json:"city"`
	Pincode     string         `gorm:"not null;index" json:"pincode"`
	Address     string         `gorm:"not null" json:"address"`
	Phone       string         `json:"phone"`
	Rating      float64        `gorm:"default:0" json:"rating"`
	Status      string         `gorm:"not null;default:'pending'" json:"status"` // pending, approved, rejected
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Store model
func (Store) TableName() string {
	return "stores"
}
