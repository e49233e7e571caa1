package models

import (
	"time"

	"gorm.io/datatypes"
)

// Repair request statuses. Transitions only move forward:
// posted -> vendor_contacted (first quote) -> in_progress (quote accepted)
// -> completed (customer confirmation). There is no cancellation state.
const (
	RepairStatusPosted          = "posted"
	RepairStatusVendorContacted = "vendor_contacted"
	RepairStatusInProgress      = "in_progress"
	RepairStatusCompleted       = "completed"
)

// Repair item types
const (
	ItemRing     = "ring"
	ItemChain    = "chain"
	ItemEarring  = "earring"
	ItemBracelet = "bracelet"
	ItemOther    = "other"
)

// Repair issue types
const (
	IssueBrokenEarpiece = "broken_earpiece"
	IssueMissingStone   = "missing_stone"
	IssueChainCut       = "chain_cut"
	IssueBentDamaged    = "bent_damaged"
	IssueCustom         = "custom"
)

// Preferred contact channels
const (
	ContactCall     = "call"
	ContactWhatsApp = "whatsapp"
	ContactChat     = "chat"
)

// Pickup/dropoff options on a quote
const (
	PickupOnly    = "pickup"
	DropoffOnly   = "dropoff"
	PickupDropoff = "both"
)

// RepairSchemaVersion is stamped on every persisted repair request so future
// field additions or renames can be migrated deterministically.
const RepairSchemaVersion = 1

// Quote is a vendor's priced, timed offer on a repair request.
// Quotes are immutable once appended; there is no edit or delete operation.
type Quote struct {
	VendorID       string    `json:"vendor_id"`
	VendorName     string    `json:"vendor_name"`
	StoreName      string    `json:"store_name"`
	EstimatedPrice float64   `json:"estimated_price"`
	TimeRequired   string    `json:"time_required"`
	PickupDropoff  string    `json:"pickup_dropoff"` // pickup, dropoff or both
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RepairRequest is a customer-submitted gold-repair ticket tracked through a
// status lifecycle. Quotes, images and interested vendors are embedded JSON
// columns rather than joined tables: they are owned exclusively by one request,
// append-only or set-like, and always read together with it.
type RepairRequest struct {
	ID                string                        `gorm:"primaryKey" json:"id"`
	CustomerID        string                        `gorm:"not null;index" json:"customer_id"`
	ItemType          string                        `gorm:"not null;index" json:"item_type"`
	IssueType         string                        `gorm:"not null;index" json:"issue_type"`
	IssueDescription  string                        `gorm:"type:text;not null" json:"issue_description"`
	Location          string                        `gorm:"not null" json:"location"`
	ApproximateWeight *float64                      `json:"approximate_weight"` // optional, grams
	PreferredContact  string                        `gorm:"not null" json:"preferred_contact"`
	Images            datatypes.JSONSlice[string]   `json:"images"` // ordered S3 keys
	Status            string                        `gorm:"not null;index;default:'posted'" json:"status"`
	Quotes            datatypes.JSONSlice[Quote]    `json:"quotes"` // append-only, insertion order = arrival order
	AcceptedQuote     datatypes.JSONType[*Quote]    `json:"accepted_quote"` // denormalized copy, nil until accepted
	InterestedVendors datatypes.JSONSlice[string]   `json:"interested_vendors"` // vendor id set, toggled membership
	CompletedAt       *time.Time                    `json:"completed_at"`
	SchemaVersion     int                           `gorm:"not null" json:"schema_version"`
	CreatedAt         time.Time                     `json:"created_at"`
	UpdatedAt         time.Time                     `json:"updated_at"`
}

// TableName specifies the table name for the RepairRequest model
func (RepairRequest) TableName() string {
	return "repair_requests"
}

// HasInterestedVendor reports whether vendorID is in the bookmark set
func (r *RepairRequest) HasInterestedVendor(vendorID string) bool {
	for _, id := range r.InterestedVendors {
		if id == vendorID {
			return true
		}
	}
	return false
}

// IsClosed reports whether the request already has an accepted vendor,
// i.e. it no longer accepts new quotes
func (r *RepairRequest) IsClosed() bool {
	return r.Status == RepairStatusInProgress || r.Status == RepairStatusCompleted
}

// ValidItemType reports whether t is one of the known item types
func ValidItemType(t string) bool {
	switch t {
	case ItemRing, ItemChain, ItemEarring, ItemBracelet, ItemOther:
		return true
	}
	return false
}

// ValidIssueType reports whether t is one of the known issue types
func ValidIssueType(t string) bool {
	switch t {
	case IssueBrokenEarpiece, IssueMissingStone, IssueChainCut, IssueBentDamaged, IssueCustom:
		return true
	}
	return false
}

// ValidPreferredContact reports whether c is a known contact channel
func ValidPreferredContact(c string) bool {
	switch c {
	case ContactCall, ContactWhatsApp, ContactChat:
		return true
	}
	return false
}

// ValidPickupDropoff reports whether p is a known pickup/dropoff option
func ValidPickupDropoff(p string) bool {
	switch p {
	case PickupOnly, DropoffOnly, PickupDropoff:
		return true
	}
	return false
}

// ValidRepairStatus reports whether s is a known repair status
func ValidRepairStatus(s string) bool {
	switch s {
	case RepairStatusPosted, RepairStatusVendorContacted, RepairStatusInProgress, RepairStatusCompleted:
		return true
	}
	return false
}
