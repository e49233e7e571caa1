package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gehnabazaar/gehnabazaar-api/config"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gehnabazaar/gehnabazaar-api/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateDesign(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	vendor := createTestUser(t, db, "auth0|designvendor", "Design Vendor", "design@example.com", models.RoleVendor)
	store := createTestStore(t, db, vendor.ID, "Design Store", "Chennai", "600001")

	router := setupTestRouter()
	router.POST("/designs", mockAuthMiddleware(vendor.Auth0ID, vendor.Role, "token"), CreateDesign)

	body, _ := json.Marshal(map[string]interface{}{
		"storeId":  store.ID,
		"name":     "Temple Necklace",
		"category": "necklace",
		"price":    45000.0,
	})
	req := httptest.NewRequest(http.MethodPost, "/designs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "Response body: %s", w.Body.String())
	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Temple Necklace", data["name"])
	assert.Equal(t, models.DesignAvailable, data["availability"])
	assert.Equal(t, store.ID, data["store_id"])
}

func TestCreateDesignOwnershipAndApproval(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	owner := createTestUser(t, db, "auth0|owner", "Owner", "owner@example.com", models.RoleVendor)
	intruder := createTestUser(t, db, "auth0|intruder", "Intruder", "intruder@example.com", models.RoleVendor)
	approvedStore := createTestStore(t, db, owner.ID, "Owned Store", "Delhi", "110001")
	pendingStore := models.Store{
		ID:       "store-pending-designs",
		VendorID: owner.ID,
		Name:     "Pending Store",
		City:     "Delhi",
		Pincode:  "110002",
		Address:  "Karol Bagh",
		Status:   models.StoreStatusPending,
	}
	assert.NoError(t, db.Create(&pendingStore).Error)

	tests := []struct {
		name           string
		vendor         models.User
		storeID        string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Another vendor's store is off limits",
			vendor:         intruder,
			storeID:        approvedStore.ID,
			expectedStatus: http.StatusForbidden,
			expectedCode:   "FORBIDDEN",
		},
		{
			name:           "Pending store cannot take designs",
			vendor:         owner,
			storeID:        pendingStore.ID,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "STORE_NOT_APPROVED",
		},
		{
			name:           "Unknown store",
			vendor:         owner,
			storeID:        "no-such-store",
			expectedStatus: http.StatusNotFound,
			expectedCode:   "STORE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.POST("/designs", mockAuthMiddleware(tt.vendor.Auth0ID, tt.vendor.Role, "token"), CreateDesign)

			body, _ := json.Marshal(map[string]interface{}{
				"storeId":  tt.storeID,
				"name":     "Some Design",
				"category": "ring",
				"price":    1000.0,
			})
			req := httptest.NewRequest(http.MethodPost, "/designs", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCode, errorCode(parseResponse(t, w)))
		})
	}
}

func TestListDesignsFiltersAndSorts(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	vendor := createTestUser(t, db, "auth0|catalogvendor", "Catalog Vendor", "catalog@example.com", models.RoleVendor)
	store := createTestStore(t, db, vendor.ID, "Catalog Store", "Hyderabad", "500001")
	otherStore := createTestStore(t, db, vendor.ID, "Other Store", "Hyderabad", "500002")

	createTestDesign(t, db, store.ID, "Gold Ring", "ring", 15000)
	createTestDesign(t, db, store.ID, "Diamond Ring", "ring", 85000)
	soldOut := createTestDesign(t, db, otherStore.ID, "Pearl Necklace", "necklace", 30000)
	db.Model(&soldOut).Update("availability", models.DesignSoldOut)

	router := setupTestRouter()
	router.GET("/designs", ListDesigns)

	tests := []struct {
		name          string
		query         string
		expectedNames []string
	}{
		{
			name:          "No filters returns everything",
			query:         "",
			expectedNames: []string{"Gold Ring", "Diamond Ring", "Pearl Necklace"},
		},
		{
			name:          "Category filter",
			query:         "?category=ring",
			expectedNames: []string{"Gold Ring", "Diamond Ring"},
		},
		{
			name:          "Store filter",
			query:         "?store_id=" + otherStore.ID,
			expectedNames: []string{"Pearl Necklace"},
		},
		{
			name:          "Availability filter",
			query:         "?availability=sold_out",
			expectedNames: []string{"Pearl Necklace"},
		},
		{
			name:          "Text search",
			query:         "?q=diamond",
			expectedNames: []string{"Diamond Ring"},
		},
		{
			name:          "Sort by price, cheapest first",
			query:         "?sort=price",
			expectedNames: []string{"Gold Ring", "Pearl Necklace", "Diamond Ring"},
		},
		{
			name:          "Sort by price descending",
			query:         "?sort=price&order=desc",
			expectedNames: []string{"Diamond Ring", "Pearl Necklace", "Gold Ring"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/designs"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			response := parseResponse(t, w)
			data := response["data"].([]interface{})

			names := make([]string, 0, len(data))
			for _, item := range data {
				names = append(names, item.(map[string]interface{})["name"].(string))
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestGetDesignResolvesImageURL(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	mockImages := services.NewMockImageService()
	mockImages.SetAsMockForTesting()
	defer services.SetImageService(nil)

	vendor := createTestUser(t, db, "auth0|imagevendor", "Image Vendor", "image@example.com", models.RoleVendor)
	store := createTestStore(t, db, vendor.ID, "Image Store", "Kochi", "682001")
	design := createTestDesign(t, db, store.ID, "Photographed Bangle", "bangle", 22000)

	router := setupTestRouter()
	router.GET("/designs/:id", GetDesign)

	req := httptest.NewRequest(http.MethodGet, "/designs/"+design.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, design.ID, data["id"])

	req = httptest.NewRequest(http.MethodGet, "/designs/no-such-design", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DESIGN_NOT_FOUND", errorCode(parseResponse(t, w)))
}

func TestUpdateDesignAvailability(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	vendor := createTestUser(t, db, "auth0|availvendor", "Avail Vendor", "avail@example.com", models.RoleVendor)
	other := createTestUser(t, db, "auth0|availother", "Avail Other", "availother@example.com", models.RoleVendor)
	store := createTestStore(t, db, vendor.ID, "Avail Store", "Nagpur", "440001")
	design := createTestDesign(t, db, store.ID, "Kundan Set", "necklace", 65000)

	makeRequest := func(user models.User, availability string) *httptest.ResponseRecorder {
		router := setupTestRouter()
		router.PUT("/designs/:id/availability", mockAuthMiddleware(user.Auth0ID, user.Role, "token"), UpdateDesignAvailability)

		body, _ := json.Marshal(map[string]string{"availability": availability})
		req := httptest.NewRequest(http.MethodPut, "/designs/"+design.ID+"/availability", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Owner can mark sold out
	w := makeRequest(vendor, models.DesignSoldOut)
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var updated models.Design
	assert.NoError(t, db.First(&updated, "id = ?", design.ID).Error)
	assert.Equal(t, models.DesignSoldOut, updated.Availability)

	// Anyone else is rejected
	w = makeRequest(other, models.DesignAvailable)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown values are rejected
	w = makeRequest(vendor, "gone")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
