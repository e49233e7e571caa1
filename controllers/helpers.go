package controllers

import (
	"net/http"

	"github.com/gehnabazaar/gehnabazaar-api/config"
	"github.com/gehnabazaar/gehnabazaar-api/middleware"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gin-gonic/gin"
)

// currentUser resolves the authenticated user's profile from the Auth0 ID in
// the request context. On failure it writes the error response and returns
// ok = false; callers should simply return.
func currentUser(c *gin.Context) (*models.User, bool) {
	auth0ID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return nil, false
	}

	db := config.GetDB()
	var user models.User
	if err := db.Where("auth0_id = ?", auth0ID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "USER_NOT_FOUND",
				"message": "User profile not found. Please create a profile first.",
			},
		})
		return nil, false
	}

	return &user, true
}

// requireRole checks the resolved user's role and writes a 403 when it does
// not match. Returns false when the request was rejected.
func requireRole(c *gin.Context, user *models.User, role, message string) bool {
	if user.Role != role {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": message,
			},
		})
		return false
	}
	return true
}
