package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// Vendor approval statuses
const (
	VendorStatusPending  = "pending"
	VendorStatusApproved = "approved"
	VendorStatusRejected = "rejected"
)

// User represents a user in the system (customer, vendor or admin)
type User struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Auth0ID      string         `gorm:"uniqueIndex;not null" json:"auth0_id"` // Auth0 user ID (from 'sub' claim)
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string         `json:"phone"`
	Role         string         `gorm:"not null;default:'customer'" json:"role"` // customer, vendor or admin
	VendorStatus string         `gorm:"default:'pending'" json:"vendor_status"`  // pending, approved, rejected; only meaningful for vendors
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsApprovedVendor reports whether the user is a vendor cleared by an admin
func (u *User) IsApprovedVendor() bool {
	return u.Role == RoleVendor && u.VendorStatus == VendorStatusApproved
}
