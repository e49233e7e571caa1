package testutil

import (
	"fmt"
	"os"
	"testing"

	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
// Use this in TestMain or suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}

	if os.Getenv("GO_ENV") != "test" {
		t.Fatal("Failed to verify GO_ENV=test")
	}
}

// OpenTestDB opens an in-memory sqlite database with every model migrated
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every connection to :memory: is a distinct database, so pin the pool
	// to one connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Design{},
		&models.Inquiry{},
		&models.RepairRequest{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// NewCustomer inserts and returns a customer account
func NewCustomer(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	return newUser(t, db, name, models.RoleCustomer, "")
}

// NewApprovedVendor inserts and returns a vendor that can quote on repairs
func NewApprovedVendor(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	return newUser(t, db, name, models.RoleVendor, models.VendorStatusApproved)
}

// NewAdmin inserts and returns an admin account
func NewAdmin(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	return newUser(t, db, name, models.RoleAdmin, "")
}

func newUser(t *testing.T, db *gorm.DB, name, role, vendorStatus string) models.User {
	t.Helper()

	id := uuid.New().String()
	user := models.User{
		ID:           id,
		Auth0ID:      "auth0|" + id,
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", id[:8]),
		Role:         role,
		VendorStatus: vendorStatus,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %q: %v", name, err)
	}
	return user
}
