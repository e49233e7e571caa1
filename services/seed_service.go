package services

import (
	"fmt"
	"log"

	"github.com/gehnabazaar/gehnabazaar-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDemoData populates the database with a fixed demo set of users, stores,
// designs and inquiries on first run. It is a no-op when users already exist,
// so restarts never duplicate data. The repair ledger is never seeded here;
// it only reads whatever is present when it initializes.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		ID:      uuid.New().String(),
		Auth0ID: "auth0|seed-admin",
		Name:    "GehnaBazaar Admin",
		Email:   "admin@gehnabazaar.com",
		Role:    models.RoleAdmin,
	}

	vendorRajesh := models.User{
		ID:           uuid.New().String(),
		Auth0ID:      "auth0|seed-vendor-rajesh",
		Name:         "Rajesh Soni",
		Email:        "rajesh@rajeshjewellers.in",
		Phone:        "+91 98200 11223",
		Role:         models.RoleVendor,
		VendorStatus: models.VendorStatusApproved,
	}
	vendorMeena := models.User{
		ID:           uuid.New().String(),
		Auth0ID:      "auth0|seed-vendor-meena",
		Name:         "Meena Agarwal",
		Email:        "meena@meenajewels.in",
		Phone:        "+91 98100 44556",
		Role:         models.RoleVendor,
		VendorStatus: models.VendorStatusApproved,
	}
	vendorNew := models.User{
		ID:           uuid.New().String(),
		Auth0ID:      "auth0|seed-vendor-arjun",
		Name:         "Arjun Mehta",
		Email:        "arjun@mehtagold.in",
		Role:         models.RoleVendor,
		VendorStatus: models.VendorStatusPending,
	}

	customerPriya := models.User{
		ID:      uuid.New().String(),
		Auth0ID: "auth0|seed-customer-priya",
		Name:    "Priya Sharma",
		Email:   "priya.sharma@example.com",
		Phone:   "+91 99300 77889",
		Role:    models.RoleCustomer,
	}
	customerAmit := models.User{
		ID:      uuid.New().String(),
		Auth0ID: "auth0|seed-customer-amit",
		Name:    "Amit Verma",
		Email:   "amit.verma@example.com",
		Role:    models.RoleCustomer,
	}

	storeRajesh := models.Store{
		ID:          uuid.New().String(),
		VendorID:    vendorRajesh.ID,
		Name:        "Rajesh Gold House",
		Description: "Traditional gold and kundan jewelry since 1987",
		City:        "Mumbai",
		Pincode:     "400050",
		Address:     "14 Hill Road, Bandra West",
		Phone:       "+91 98200 11223",
		Rating:      4.6,
		Status:      models.StoreStatusApproved,
	}
	storeMeena := models.Store{
		ID:          uuid.New().String(),
		VendorID:    vendorMeena.ID,
		Name:        "Meena Jewels",
		Description: "Contemporary diamond and pearl designs",
		City:        "Pune",
		Pincode:     "411004",
		Address:     "22 FC Road, Shivajinagar",
		Phone:       "+91 98100 44556",
		Rating:      4.3,
		Status:      models.StoreStatusApproved,
	}
	storePending := models.Store{
		ID:       uuid.New().String(),
		VendorID: vendorNew.ID,
		Name:     "Mehta Gold Works",
		City:     "Mumbai",
		Pincode:  "400001",
		Address:  "3 Zaveri Bazaar",
		Status:   models.StoreStatusPending,
	}

	designs := []models.Design{
		{
			ID:           uuid.New().String(),
			StoreID:      storeRajesh.ID,
			Name:         "Temple Necklace",
			Category:     "necklace",
			Description:  "22k gold temple work necklace with lakshmi motif",
			Price:        185000,
			Availability: models.DesignAvailable,
		},
		{
			ID:           uuid.New().String(),
			StoreID:      storeRajesh.ID,
			Name:         "Kundan Chandbali",
			Category:     "earring",
			Description:  "Kundan chandbali earrings with pearl drops",
			Price:        42000,
			Availability: models.DesignSoldOut,
		},
		{
			ID:           uuid.New().String(),
			StoreID:      storeMeena.ID,
			Name:         "Solitaire Ring",
			Category:     "ring",
			Description:  "0.5 carat solitaire in 18k white gold",
			Price:        98000,
			Availability: models.DesignAvailable,
		},
	}

	inquiry := models.Inquiry{
		ID:         uuid.New().String(),
		CustomerID: customerPriya.ID,
		StoreID:    storeRajesh.ID,
		DesignID:   designs[0].ID,
		Message:    "Is the temple necklace available for a wedding in December?",
		Status:     models.InquiryStatusPending,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{admin, vendorRajesh, vendorMeena, vendorNew, customerPriya, customerAmit}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		stores := []models.Store{storeRajesh, storeMeena, storePending}
		if err := tx.Create(&stores).Error; err != nil {
			return fmt.Errorf("failed to seed stores: %w", err)
		}
		if err := tx.Create(&designs).Error; err != nil {
			return fmt.Errorf("failed to seed designs: %w", err)
		}
		if err := tx.Create(&inquiry).Error; err != nil {
			return fmt.Errorf("failed to seed inquiries: %w", err)
		}

		log.Println("Seeded demo data: 6 users, 3 stores, 3 designs, 1 inquiry")
		return nil
	})
}
