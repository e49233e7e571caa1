package controllers

import (
	"net/http"

	"github.com/gehnabazaar/gehnabazaar-api/config"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateInquiryRequest represents the request body for sending a design inquiry
type CreateInquiryRequest struct {
	DesignID string `json:"designId" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// CreateInquiry handles POST /api/v1/inquiries - a customer inquires about a design
func CreateInquiry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateInquiryRequest
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

	db := config.GetDB()
	var design models.Design
	if err := db.First(&design, "id = ?", req.DesignID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DESIGN_NOT_FOUND",
				"message": "Design not found",
			},
		})
		return
	}

	inquiry := models.Inquiry{
		ID:         uuid.New().String(),
		CustomerID: user.ID,
		StoreID:    design.StoreID,
		DesignID:   design.ID,
		Message:    req.Message,
		Status:     models.InquiryStatusPending,
	}

	if err := db.Create(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create inquiry",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    inquiry,
	})
}

// ListMyInquiries handles GET /api/v1/inquiries/me - inquiries sent by the
// authenticated customer
func ListMyInquiries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var inquiries []models.Inquiry
	if err := db.Preload("Design").Where("customer_id = ?", user.ID).
		Order("created_at DESC").Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch inquiries",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiries,
	})
}

// ListStoreInquiries handles GET /api/v1/stores/:id/inquiries - inquiries
// received by a store, visible only to the owning vendor
func ListStoreInquiries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
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
	if store.VendorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You can only view inquiries for your own stores",
			},
		})
		return
	}

	var inquiries []models.Inquiry
	if err := db.Preload("Customer").Preload("Design").Where("store_id = ?", store.ID).
		Order("created_at DESC").Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch inquiries",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiries,
	})
}

// UpdateInquiryStatus handles PUT /api/v1/inquiries/:id/status - the vendor
// moves an inquiry through its workflow
func UpdateInquiryStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=accepted rejected scheduled completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid inquiry status",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var inquiry models.Inquiry
	if err := db.Preload("Store").First(&inquiry, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INQUIRY_NOT_FOUND",
				"message": "Inquiry not found",
			},
		})
		return
	}
	if inquiry.Store.VendorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You can only update inquiries for your own stores",
			},
		})
		return
	}

	if err := db.Model(&inquiry).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update inquiry",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiry,
	})
}
