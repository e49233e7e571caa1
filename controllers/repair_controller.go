package controllers

import (
	"errors"
	"net/http"

	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gehnabazaar/gehnabazaar-api/services"
	"github.com/gin-gonic/gin"
)

// RepairController serves the repair-request endpoints. It holds the one
// ledger built at startup; handlers never reach for package-level state.
type RepairController struct {
	Ledger *services.RepairLedger
}

// NewRepairController builds a controller around the given ledger
func NewRepairController(ledger *services.RepairLedger) *RepairController {
	return &RepairController{Ledger: ledger}
}

// CreateRepairRequest represents the request body for posting a repair request
type CreateRepairRequest struct {
	ItemType          string   `json:"itemType" binding:"required"`
	IssueType         string   `json:"issueType" binding:"required"`
	IssueDescription  string   `json:"issueDescription" binding:"required"`
	Location          string   `json:"location" binding:"required"`
	ApproximateWeight *float64 `json:"approximateWeight"`
	PreferredContact  string   `json:"preferredContact" binding:"required"`
	Images            []string `json:"images"`
}

// AddQuoteRequest represents the request body for a vendor quoting on a repair
type AddQuoteRequest struct {
	EstimatedPrice float64 `json:"estimatedPrice" binding:"required,gt=0"`
	TimeRequired   string  `json:"timeRequired" binding:"required"`
	PickupDropoff  string  `json:"pickupDropoff" binding:"required"`
	StoreName      string  `json:"storeName"`
	Notes          string  `json:"notes"`
}

// AcceptQuoteRequest identifies which quote the customer accepts
type AcceptQuoteRequest struct {
	QuoteIndex *int `json:"quoteIndex" binding:"required"`
}

// repairError writes the envelope for a ledger error
func repairError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRepairNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REPAIR_NOT_FOUND",
				"message": "Repair request not found",
			},
		})
	case errors.Is(err, services.ErrRepairClosed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REPAIR_CLOSED",
				"message": "This repair request is no longer open",
			},
		})
	case errors.Is(err, services.ErrQuoteInvalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_QUOTE",
				"message": "No such quote on this repair request",
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update repair request",
			},
		})
	}
}

// CreateRepair handles POST /api/v1/repairs - a customer posts a repair request
func (rc *RepairController) CreateRepair(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateRepairRequest
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
	if !models.ValidItemType(req.ItemType) || !models.ValidIssueType(req.IssueType) ||
		!models.ValidPreferredContact(req.PreferredContact) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Unknown item type, issue type or contact channel",
			},
		})
		return
	}

	repair, err := rc.Ledger.Create(services.CreateRepairInput{
		CustomerID:        user.ID,
		ItemType:          req.ItemType,
		IssueType:         req.IssueType,
		IssueDescription:  req.IssueDescription,
		Location:          req.Location,
		ApproximateWeight: req.ApproximateWeight,
		PreferredContact:  req.PreferredContact,
		Images:            req.Images,
	})
	if err != nil {
		repairError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    repair,
	})
}

// ListMyRepairs handles GET /api/v1/repairs/me - the customer's own requests
func (rc *RepairController) ListMyRepairs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rc.Ledger.GetByCustomer(user.ID),
	})
}

// ListOpenRepairs handles GET /api/v1/repairs - the vendor-facing feed.
// Query params: status, item_type, issue_type narrow the listing.
func (rc *RepairController) ListOpenRepairs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleVendor, "Only vendors can browse repair requests") {
		return
	}

	var repairs []models.RepairRequest
	switch {
	case c.Query("status") != "":
		repairs = rc.Ledger.GetByStatus(c.Query("status"))
	case c.Query("item_type") != "":
		repairs = rc.Ledger.GetByItemType(c.Query("item_type"))
	case c.Query("issue_type") != "":
		repairs = rc.Ledger.GetByIssueType(c.Query("issue_type"))
	default:
		repairs = rc.Ledger.All()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    repairs,
	})
}

// GetRepair handles GET /api/v1/repairs/:id
func (rc *RepairController) GetRepair(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	repair, err := rc.Ledger.GetByID(c.Param("id"))
	if err != nil {
		repairError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    repair,
	})
}

// AddQuote handles POST /api/v1/repairs/:id/quotes - an approved vendor quotes
// on an open repair request
func (rc *RepairController) AddQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleVendor, "Only vendors can quote on repairs") {
		return
	}
	if !user.IsApprovedVendor() {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VENDOR_NOT_APPROVED",
				"message": "Your vendor account is awaiting approval",
			},
		})
		return
	}

	var req AddQuoteRequest
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
	if !models.ValidPickupDropoff(req.PickupDropoff) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Pickup/dropoff must be pickup, dropoff or both",
			},
		})
		return
	}

	repair, err := rc.Ledger.AddQuote(c.Param("id"), models.Quote{
		VendorID:       user.ID,
		VendorName:     user.Name,
		StoreName:      req.StoreName,
		EstimatedPrice: req.EstimatedPrice,
		TimeRequired:   req.TimeRequired,
		PickupDropoff:  req.PickupDropoff,
		Notes:          req.Notes,
	})
	if err != nil {
		repairError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    repair,
	})
}

// AcceptQuote handles POST /api/v1/repairs/:id/accept - the owning customer
// accepts one of the quotes
func (rc *RepairController) AcceptQuote(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AcceptQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "quoteIndex is required",
				"details": err.Error(),
			},
		})
		return
	}

	repair, err := rc.Ledger.GetByID(c.Param("id"))
	if err != nil {
		repairError(c, err)
		return
	}
	if repair.CustomerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You can only accept quotes on your own repair requests",
			},
		})
		return
	}

	repair, err = rc.Ledger.AcceptQuote(repair.ID, *req.QuoteIndex)
	if err != nil {
		repairError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    repair,
	})
}

// CompleteRepair handles POST /api/v1/repairs/:id/complete - the owning
// customer confirms the repair is done
func (rc *RepairController) CompleteRepair(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	repair, err := rc.Ledger.GetByID(c.Param("id"))
	if err != nil {
		repairError(c, err)
		return
	}
	if repair.CustomerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You can only complete your own repair requests",
			},
		})
		return
	}

	repair, err = rc.Ledger.Complete(repair.ID)
	if err != nil {
		repairError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    repair,
	})
}

// ToggleInterest handles POST /api/v1/repairs/:id/interest - a vendor
// bookmarks or un-bookmarks a repair request
func (rc *RepairController) ToggleInterest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleVendor, "Only vendors can save repair requests") {
		return
	}

	repair, err := rc.Ledger.ToggleVendorInterest(c.Param("id"), user.ID)
	if err != nil {
		repairError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    repair,
	})
}

// ListSavedRepairs handles GET /api/v1/vendors/me/saved-repairs
func (rc *RepairController) ListSavedRepairs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !requireRole(c, user, models.RoleVendor, "Only vendors can save repair requests") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rc.Ledger.GetSavedByVendor(user.ID),
	})
}

// DeleteRepair handles DELETE /api/v1/repairs/:id - the owning customer
// removes a request outright
func (rc *RepairController) DeleteRepair(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	repair, err := rc.Ledger.GetByID(c.Param("id"))
	if err != nil {
		repairError(c, err)
		return
	}
	if repair.CustomerID != user.ID && user.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "You can only delete your own repair requests",
			},
		})
		return
	}

	if err := rc.Ledger.Delete(repair.ID); err != nil {
		repairError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message": "Repair request deleted",
		},
	})
}
