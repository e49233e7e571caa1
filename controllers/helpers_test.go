package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gehnabazaar/gehnabazaar-api/middleware"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gehnabazaar/gehnabazaar-api/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

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

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

// setupMockAuth0Server creates a mock HTTP server that simulates Auth0's /userinfo endpoint
func setupMockAuth0Server(userInfoMap map[string]*services.Auth0UserInfo) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/userinfo" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || len(authHeader) < 7 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		token := authHeader[7:] // Remove "Bearer " prefix

		userInfo, exists := userInfoMap[token]
		if !exists {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(userInfo)
	}))
}

// mockAuthMiddleware simulates the Auth0 JWT middleware for testing.
// It sets up the context exactly as the real EnsureValidToken middleware does.
func mockAuthMiddleware(auth0ID, role, accessToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", auth0ID)
		c.Set("access_token", accessToken)

		customClaims := &middleware.CustomClaims{
			Role: role,
		}
		mockClaims := &validator.ValidatedClaims{
			CustomClaims: customClaims,
		}
		c.Set("validated_claims", mockClaims)

		c.Next()
	}
}

// createTestUser inserts a user with a fresh id and obvious defaults
func createTestUser(t *testing.T, db *gorm.DB, auth0ID, name, email, role string) models.User {
	user := models.User{
		ID:      uuid.New().String(),
		Auth0ID: auth0ID,
		Name:    name,
		Email:   email,
		Role:    role,
	}
	if role == models.RoleVendor {
		user.VendorStatus = models.VendorStatusApproved
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// createTestStore inserts an approved store owned by the given vendor
func createTestStore(t *testing.T, db *gorm.DB, vendorID, name, city, pincode string) models.Store {
	store := models.Store{
		ID:       uuid.New().String(),
		VendorID: vendorID,
		Name:     name,
		City:     city,
		Pincode:  pincode,
		Address:  "12 " + city + " Main Road",
		Status:   models.StoreStatusApproved,
	}
	if err := db.Create(&store).Error; err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	return store
}

// createTestDesign inserts an available design for the given store
func createTestDesign(t *testing.T, db *gorm.DB, storeID, name, category string, price float64) models.Design {
	design := models.Design{
		ID:           uuid.New().String(),
		StoreID:      storeID,
		Name:         name,
		Category:     category,
		Price:        price,
		Availability: models.DesignAvailable,
	}
	if err := db.Create(&design).Error; err != nil {
		t.Fatalf("Failed to create test design: %v", err)
	}
	return design
}

// newTestLedger builds a repair ledger over the test database
func newTestLedger(t *testing.T, db *gorm.DB) *RepairController {
	ledger, err := services.NewRepairLedger(db)
	if err != nil {
		t.Fatalf("Failed to build repair ledger: %v", err)
	}
	return NewRepairController(ledger)
}

// parseResponse decodes the JSON envelope from a recorder
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response should be valid JSON, got: %s", w.Body.String())
	}
	return response
}

// errorCode pulls error.code out of a decoded envelope
func errorCode(response map[string]interface{}) string {
	errData, ok := response["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errData["code"].(string)
	return code
}
