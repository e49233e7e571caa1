package controllers

import (
	"net/http"

	"github.com/gehnabazaar/gehnabazaar-api/config"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gehnabazaar/gehnabazaar-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateStoreRequest represents the request body for registering a store
type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	City        string `json:"city" binding:"required"`
	Pincode     string `json:"pincode" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone"`
}

// CreateStore handles POST /api/v1/stores - registers a new store (vendors only)
// The store starts pending and becomes visible once an admin approves it.
func CreateStore(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleVendor, "Only vendors can register stores") {
		return
	}

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	store := models.Store{
		ID:          uuid.New().String(),
		VendorID:    user.ID,
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Pincode:     req.Pincode,
		Address:     req.Address,
		Phone:       req.Phone,
		Status:      models.StoreStatusPending,
	}

	db := config.GetDB()
	if err := db.Create(&store).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create store",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    store,
	})
}

// ListStores handles GET /api/v1/stores - public catalog of approved stores.
// Query params: q (text search), city, pincode, sort=rating, order=asc|desc.
func ListStores(c *gin.Context) {
	db := config.GetDB()
	var stores []models.Store
	if err := db.Order("created_at ASC").Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch stores",
			},
		})
		return
	}

	// Only approved stores are publicly visible
	stores = utils.FilterStoresByStatus(stores, models.StoreStatusApproved)
	stores = utils.SearchStores(stores, c.Query("q"))
	stores = utils.FilterStoresByCity(stores, c.Query("city"))
	stores = utils.FilterStoresByPincode(stores, c.Query("pincode"))
	if c.Query("sort") == "rating" {
		stores = utils.SortStoresByRating(stores, c.Query("order") == "asc")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores,
		"meta": gin.H{
			"cities":   utils.GetUniqueCities(stores),
			"pincodes": utils.GetUniquePincodes(stores),
		},
	})
}

// GetStore handles GET /api/v1/stores/:id - fetches one approved store
func GetStore(c *gin.Context) {
	db := config.GetDB()
	var store models.Store
	if err := db.Preload("Vendor").First(&store, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORE_NOT_FOUND",
				"message": "Store not found",
			},
		})
		return
	}

	// Unapproved stores are hidden from the public catalog
	if store.Status != models.StoreStatusApproved {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORE_NOT_FOUND",
				"message": "Store not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    store,
	})
}

// ListMyStores handles GET /api/v1/vendors/me/stores - a vendor's own stores,
// including pending and rejected ones
func ListMyStores(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleVendor, "Only vendors have stores") {
		return
	}

	db := config.GetDB()
	var stores []models.Store
	if err := db.Where("vendor_id = ?", user.ID).Order("created_at ASC").Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch stores",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores,
	})
}

// ListAllStores handles GET /api/v1/admin/stores - admin view across all
// statuses, optionally filtered by ?status=
func ListAllStores(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleAdmin, "Only admins can list all stores") {
		return
	}

	db := config.GetDB()
	var stores []models.Store
	if err := db.Preload("Vendor").Order("created_at ASC").Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch stores",
			},
		})
		return
	}

	stores = utils.FilterStoresByStatus(stores, c.Query("status"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores,
	})
}

// UpdateStoreStatus handles PUT /api/v1/admin/stores/:id/status - admin
// approves or rejects a store
func UpdateStoreStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleAdmin, "Only admins can review stores") {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=approved rejected"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Status must be approved or rejected",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var store models.Store
	if err := db.First(&store, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORE_NOT_FOUND",
				"message": "Store not found",
			},
		})
		return
	}

	if err := db.Model(&store).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update store status",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    store,
	})
}
