package controllers

import (
	"net/http"

	"github.com/gehnabazaar/gehnabazaar-api/config"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gehnabazaar/gehnabazaar-api/services"
	"github.com/gehnabazaar/gehnabazaar-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateDesignRequest represents the request body for listing a design
type CreateDesignRequest struct {
	StoreID     string  `json:"storeId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageS3Key  *string `json:"imageS3Key"`
}

// CreateDesign handles POST /api/v1/designs - adds a design to one of the
// vendor's approved stores
func CreateDesign(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleVendor, "Only vendors can list designs") {
		return
	}

	var req CreateDesignRequest
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
	var store models.Store
	if err := db.First(&store, "id = ?", req.StoreID).Error; err != nil {
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
				"message": "You can only add designs to your own stores",
			},
		})
		return
	}
	if store.Status != models.StoreStatusApproved {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORE_NOT_APPROVED",
				"message": "Designs can only be added to approved stores",
			},
		})
		return
	}

	design := models.Design{
		ID:           uuid.New().String(),
		StoreID:      store.ID,
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		ImageS3Key:   req.ImageS3Key,
		Availability: models.DesignAvailable,
	}

	if err := db.Create(&design).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create design",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    design,
	})
}

// attachImageURLs resolves presigned URLs for designs that carry an S3 key.
// Presigning failures leave the URL nil rather than failing the listing.
func attachImageURLs(designs []models.Design) []models.Design {
	svc := services.GetImageService()
	if svc == nil {
		return designs
	}
	for i := range designs {
		if designs[i].ImageS3Key == nil {
			continue
		}
		if url, err := svc.GetImageURL(*designs[i].ImageS3Key); err == nil {
			designs[i].ImageURL = &url
		}
	}
	return designs
}

// ListDesigns handles GET /api/v1/designs - public catalog of designs.
// Query params: q, store_id, category, availability, sort=price, order=asc|desc.
func ListDesigns(c *gin.Context) {
	db := config.GetDB()
	var designs []models.Design
	if err := db.Order("created_at ASC").Find(&designs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch designs",
			},
		})
		return
	}

	designs = utils.SearchDesigns(designs, c.Query("q"))
	designs = utils.FilterDesignsByStore(designs, c.Query("store_id"))
	designs = utils.FilterDesignsByCategory(designs, c.Query("category"))
	designs = utils.FilterDesignsByAvailability(designs, c.Query("availability"))
	if c.Query("sort") == "price" {
		designs = utils.SortDesignsByPrice(designs, c.Query("order") == "desc")
	}
	designs = attachImageURLs(designs)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    designs,
	})
}

// GetDesign handles GET /api/v1/designs/:id
func GetDesign(c *gin.Context) {
	db := config.GetDB()
	var design models.Design
	if err := db.First(&design, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DESIGN_NOT_FOUND",
				"message": "Design not found",
			},
		})
		return
	}

	if design.ImageS3Key != nil {
		if svc := services.GetImageService(); svc != nil {
			if url, err := svc.GetImageURL(*design.ImageS3Key); err == nil {
				design.ImageURL = &url
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    design,
	})
}

// UpdateDesignAvailability handles PUT /api/v1/designs/:id/availability -
// the owning vendor marks a design available or sold out
func UpdateDesignAvailability(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Availability string `json:"availability" binding:"required,oneof=available sold_out"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Availability must be available or sold_out",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var design models.Design
	if err := db.Preload("Store").First(&design, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DESIGN_NOT_FOUND",
				"message": "Design not found",
			},
		})
		return
	}
	if design.Store.VendorID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You can only update your own designs",
			},
		})
		return
	}

	if err := db.Model(&design).Update("availability", req.Availability).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update design",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    design,
	})
}
