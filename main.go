package main

import (
	"log"
	"net/http"

	"github.com/gehnabazaar/gehnabazaar-api/config"
	"github.com/gehnabazaar/gehnabazaar-api/controllers"
	"github.com/gehnabazaar/gehnabazaar-api/middleware"
	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/gehnabazaar/gehnabazaar-api/services"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting GehnaBazaar API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Design{},
		&models.Inquiry{},
		&models.RepairRequest{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Demo accounts, stores and designs for local development
	if !cfg.IsProduction() {
		if err := services.SeedDemoData(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Initialize S3-backed image storage
	s3Service, err := services.InitS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}
	services.InitImageService(s3Service)

	// Load the repair ledger into memory
	ledger, err := services.NewRepairLedger(db)
	if err != nil {
		log.Fatalf("Failed to load repair ledger: %v", err)
	}
	repairs := controllers.NewRepairController(ledger)

	router := setupRouter(repairs, middleware.EnsureValidToken(cfg))

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires every route. The auth middleware is injected so tests can
// substitute a stub that sets the user id directly.
func setupRouter(repairs *controllers.RepairController, auth gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Public catalog
		v1.GET("/stores", controllers.ListStores)
		v1.GET("/stores/:id", controllers.GetStore)
		v1.GET("/designs", controllers.ListDesigns)
		v1.GET("/designs/:id", controllers.GetDesign)

		authed := v1.Group("")
		authed.Use(auth)
		{
			// Users
			authed.POST("/users", controllers.CreateUser)
			authed.GET("/users/me", controllers.GetMyProfile)
			authed.PUT("/users/me", controllers.UpdateMyProfile)

			// Stores
			authed.POST("/stores", controllers.CreateStore)
			authed.GET("/vendors/me/stores", controllers.ListMyStores)

			// Designs
			authed.POST("/designs", controllers.CreateDesign)
			authed.PUT("/designs/:id/availability", controllers.UpdateDesignAvailability)

			// Inquiries
			authed.POST("/inquiries", controllers.CreateInquiry)
			authed.GET("/inquiries/me", controllers.ListMyInquiries)
			authed.GET("/stores/:id/inquiries", controllers.ListStoreInquiries)
			authed.PUT("/inquiries/:id/status", controllers.UpdateInquiryStatus)

			// Repair requests
			authed.POST("/repairs", repairs.CreateRepair)
			authed.GET("/repairs", repairs.ListOpenRepairs)
			authed.GET("/repairs/me", repairs.ListMyRepairs)
			authed.GET("/repairs/:id", repairs.GetRepair)
			authed.DELETE("/repairs/:id", repairs.DeleteRepair)
			authed.POST("/repairs/:id/quotes", repairs.AddQuote)
			authed.POST("/repairs/:id/accept", repairs.AcceptQuote)
			authed.POST("/repairs/:id/complete", repairs.CompleteRepair)
			authed.POST("/repairs/:id/interest", repairs.ToggleInterest)
			authed.GET("/vendors/me/saved-repairs", repairs.ListSavedRepairs)

			// Image uploads
			authed.POST("/uploads/images", controllers.UploadImage)

			// Admin
			authed.PUT("/admin/vendors/:id/status", controllers.UpdateVendorStatus)
			authed.GET("/admin/stores", controllers.ListAllStores)
			authed.PUT("/admin/stores/:id/status", controllers.UpdateStoreStatus)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "GehnaBazaar API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
