package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sentinel errors returned by the repair ledger. Persistence failures are
// returned wrapped, so callers can tell "record missing" apart from
// "database write failed".
var (
	ErrRepairNotFound = errors.New("repair request not found")
	ErrRepairClosed   = errors.New("repair request already has an accepted vendor")
	ErrQuoteInvalid   = errors.New("quote does not exist on this repair request")
	ErrInvalidStatus  = errors.New("unknown repair status")
)

// CreateRepairInput carries the caller-validated fields for a new repair
// request. Required-field validation is the controller's job; the ledger
// only assigns identity, status and timestamps.
type CreateRepairInput struct {
	CustomerID        string
	ItemType          string
	IssueType         string
	IssueDescription  string
	Location          string
	ApproximateWeight *float64
	PreferredContact  string
	Images            []string
}

// RepairPatch holds the optional fields merged into a record on a status
// update. Nil fields are left untouched (non-destructive merge).
type RepairPatch struct {
	AcceptedQuote *models.Quote
	CompletedAt   *time.Time
}

// RepairLedger maintains the authoritative in-memory set of repair requests
// for the running process and keeps the database mirror in sync. Every
// mutation persists first and only then updates memory, so a failed write
// never leaves the two views inconsistent.
//
// One ledger is constructed at startup and passed by reference to every
// consumer. All mutation goes through its methods; returned records are
// copies and never alias the ledger's backing memory.
type RepairLedger struct {
	db *gorm.DB

	mu      sync.RWMutex
	records []models.RepairRequest // insertion order
}

// NewRepairLedger loads the persisted repair requests into memory.
// An empty table yields an empty ledger; seeding is not the ledger's job.
func NewRepairLedger(db *gorm.DB) (*RepairLedger, error) {
	var records []models.RepairRequest
	if err := db.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load repair requests: %w", err)
	}

	return &RepairLedger{db: db, records: records}, nil
}

// Create appends a new repair request with status posted, empty quotes and
// an empty interested-vendor set. It always succeeds given well-formed
// input unless the database write fails.
func (l *RepairLedger) Create(input CreateRepairInput) (models.RepairRequest, error) {
	now := time.Now()
	images := input.Images
	if images == nil {
		images = []string{}
	}

	record := models.RepairRequest{
		ID:                uuid.New().String(),
		CustomerID:        input.CustomerID,
		ItemType:          input.ItemType,
		IssueType:         input.IssueType,
		IssueDescription:  input.IssueDescription,
		Location:          input.Location,
		ApproximateWeight: input.ApproximateWeight,
		PreferredContact:  input.PreferredContact,
		Images:            datatypes.JSONSlice[string](images),
		Status:            models.RepairStatusPosted,
		Quotes:            datatypes.JSONSlice[models.Quote]{},
		InterestedVendors: datatypes.JSONSlice[string]{},
		SchemaVersion:     models.RepairSchemaVersion,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Persist before touching memory
	if err := l.db.Create(&record).Error; err != nil {
		return models.RepairRequest{}, fmt.Errorf("failed to persist repair request: %w", err)
	}
	l.records = append(l.records, record)

	return cloneRepair(record), nil
}

// GetByID returns a copy of the repair request with the given id, or
// ErrRepairNotFound when it is absent.
func (l *RepairLedger) GetByID(id string) (models.RepairRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.RepairRequest{}, ErrRepairNotFound
	}
	return cloneRepair(l.records[idx]), nil
}

// GetByCustomer returns all repair requests created by the given customer.
func (l *RepairLedger) GetByCustomer(customerID string) []models.RepairRequest {
	return l.filter(func(r *models.RepairRequest) bool { return r.CustomerID == customerID })
}

// GetByStatus returns all repair requests with the given status.
func (l *RepairLedger) GetByStatus(status string) []models.RepairRequest {
	return l.filter(func(r *models.RepairRequest) bool { return r.Status == status })
}

// GetByItemType returns all repair requests for the given item type.
func (l *RepairLedger) GetByItemType(itemType string) []models.RepairRequest {
	return l.filter(func(r *models.RepairRequest) bool { return r.ItemType == itemType })
}

// GetByIssueType returns all repair requests with the given issue type.
func (l *RepairLedger) GetByIssueType(issueType string) []models.RepairRequest {
	return l.filter(func(r *models.RepairRequest) bool { return r.IssueType == issueType })
}

// GetSavedByVendor returns all repair requests the vendor has bookmarked.
func (l *RepairLedger) GetSavedByVendor(vendorID string) []models.RepairRequest {
	return l.filter(func(r *models.RepairRequest) bool { return r.HasInterestedVendor(vendorID) })
}

// All returns a copy of every repair request in insertion order.
func (l *RepairLedger) All() []models.RepairRequest {
	return l.filter(func(*models.RepairRequest) bool { return true })
}

// UpdateStatus overwrites the status of the identified request, merges the
// non-nil patch fields into it and stamps updatedAt. Earlier fields are
// never lost.
func (l *RepairLedger) UpdateStatus(id, status string, patch RepairPatch) (models.RepairRequest, error) {
	if !models.ValidRepairStatus(status) {
		return models.RepairRequest{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return l.mutate(id, func(r *models.RepairRequest) error {
		r.Status = status
		if patch.AcceptedQuote != nil {
			q := *patch.AcceptedQuote
			r.AcceptedQuote = datatypes.NewJSONType(&q)
		}
		if patch.CompletedAt != nil {
			t := *patch.CompletedAt
			r.CompletedAt = &t
		}
		return nil
	})
}

// AddQuote stamps the quote with the current time and appends it. The first
// quote on a posted request moves it to vendor_contacted; a request that is
// already vendor_contacted keeps its status. Requests with an accepted
// vendor no longer take quotes and return ErrRepairClosed.
func (l *RepairLedger) AddQuote(id string, quote models.Quote) (models.RepairRequest, error) {
	return l.mutate(id, func(r *models.RepairRequest) error {
		if r.IsClosed() {
			return ErrRepairClosed
		}

		quote.CreatedAt = time.Now()
		r.Quotes = append(r.Quotes, quote)
		if r.Status == models.RepairStatusPosted {
			r.Status = models.RepairStatusVendorContacted
		}
		return nil
	})
}

// AcceptQuote records the quote at the given index as the accepted one and
// moves the request to in_progress. The accepted quote is a denormalized
// copy, not a live reference into the quotes list.
func (l *RepairLedger) AcceptQuote(id string, quoteIndex int) (models.RepairRequest, error) {
	return l.mutate(id, func(r *models.RepairRequest) error {
		if r.IsClosed() {
			return ErrRepairClosed
		}
		if quoteIndex < 0 || quoteIndex >= len(r.Quotes) {
			return ErrQuoteInvalid
		}

		accepted := r.Quotes[quoteIndex]
		r.AcceptedQuote = datatypes.NewJSONType(&accepted)
		r.Status = models.RepairStatusInProgress
		return nil
	})
}

// Complete confirms the repair is done, moving in_progress to completed and
// recording completedAt. No transition leaves completed.
func (l *RepairLedger) Complete(id string) (models.RepairRequest, error) {
	return l.mutate(id, func(r *models.RepairRequest) error {
		if r.Status != models.RepairStatusInProgress {
			return ErrRepairClosed
		}

		now := time.Now()
		r.CompletedAt = &now
		r.Status = models.RepairStatusCompleted
		return nil
	})
}

// ToggleVendorInterest flips the vendor's bookmark on the request: present
// becomes absent and absent becomes present. Two calls in a row restore the
// original membership.
func (l *RepairLedger) ToggleVendorInterest(id, vendorID string) (models.RepairRequest, error) {
	return l.mutate(id, func(r *models.RepairRequest) error {
		vendors := make(datatypes.JSONSlice[string], 0, len(r.InterestedVendors)+1)
		removed := false
		for _, v := range r.InterestedVendors {
			if v == vendorID {
				removed = true
				continue
			}
			vendors = append(vendors, v)
		}
		if !removed {
			vendors = append(vendors, vendorID)
		}
		r.InterestedVendors = vendors
		return nil
	})
}

// Delete removes the request from the database and from memory. There is no
// soft delete or tombstone.
func (l *RepairLedger) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return ErrRepairNotFound
	}

	if err := l.db.Delete(&models.RepairRequest{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete repair request: %w", err)
	}
	l.records = append(l.records[:idx], l.records[idx+1:]...)

	return nil
}

// mutate applies fn to a working copy of the identified record, persists the
// result and only then swaps it into memory. fn returning an error aborts
// the mutation with no change to either view.
func (l *RepairLedger) mutate(id string, fn func(*models.RepairRequest) error) (models.RepairRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.RepairRequest{}, ErrRepairNotFound
	}

	updated := cloneRepair(l.records[idx])
	if err := fn(&updated); err != nil {
		return models.RepairRequest{}, err
	}
	updated.UpdatedAt = time.Now()

	if err := l.db.Save(&updated).Error; err != nil {
		return models.RepairRequest{}, fmt.Errorf("failed to persist repair request: %w", err)
	}
	l.records[idx] = updated

	return cloneRepair(updated), nil
}

// indexOf returns the position of the record with the given id, or -1.
// Callers must hold the lock. Linear scan is fine at the expected scale.
func (l *RepairLedger) indexOf(id string) int {
	for i := range l.records {
		if l.records[i].ID == id {
			return i
		}
	}
	return -1
}

// filter returns copies of all records matching the predicate, preserving
// insertion order. The result is empty, never nil-dereferencing, when
// nothing matches.
func (l *RepairLedger) filter(match func(*models.RepairRequest) bool) []models.RepairRequest {
	l.mu.RLock()
	defer l.mu.RUnlock()

	results := []models.RepairRequest{}
	for i := range l.records {
		if match(&l.records[i]) {
			results = append(results, cloneRepair(l.records[i]))
		}
	}
	return results
}

// cloneRepair deep-copies a record so callers never share slice backing
// arrays with the ledger's internal state.
func cloneRepair(r models.RepairRequest) models.RepairRequest {
	clone := r
	clone.Images = append(datatypes.JSONSlice[string]{}, r.Images...)
	clone.Quotes = append(datatypes.JSONSlice[models.Quote]{}, r.Quotes...)
	clone.InterestedVendors = append(datatypes.JSONSlice[string]{}, r.InterestedVendors...)
	if r.ApproximateWeight != nil {
		w := *r.ApproximateWeight
		clone.ApproximateWeight = &w
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		clone.CompletedAt = &t
	}
	if q := r.AcceptedQuote.Data(); q != nil {
		accepted := *q
		clone.AcceptedQuote = datatypes.NewJSONType(&accepted)
	}
	return clone
}
