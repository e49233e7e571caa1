package models

import (
	"time"

	"gorm.io/gorm"
)

// Design availability statuses
const (
	DesignAvailable = "available"
	DesignSoldOut   = "sold_out"
)

// Design represents a jewelry design listed under a store
type Design struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	StoreID      string         `gorm:"not null;index" json:"store_id"` // foreign key to stores table
	Store        Store          `gorm:"foreignKey:StoreID" json:"-"`    // don't include full store in JSON
	Name         string         `gorm:"not null" json:"name"`
	Category     string         `gorm:"not null;index" json:"category"` // e.g. necklace, ring, bangle
	Description  string         `gorm:"type:text" json:"description"`
	Price        float64        `gorm:"not null;check:price > 0" json:"price"`
	ImageS3Key   *string        `json:"image_s3_key"`                 // nullable, S3 key for the design photo
	ImageURL     *string        `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL for image
	Availability string         `gorm:"not null;default:'available'" json:"availability"` // available or sold_out
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Design model
func (Design) TableName() string {
	return "designs"
}
