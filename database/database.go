package database

import (
	"fmt"
	"log"
	"os"

	"eugene-eats-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=eugene_eats port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Business{},
		&models.BusinessHours{},
		&models.BlogPost{},
		&models.Subscriber{},
	)
}

func CreateDefaultAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" {
		adminEmail = "admin@eugeneeats.com"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existingUser models.User
	result := db.Where("email = ?", adminEmail).First(&existingUser)
	if result.Error == nil {
		// Admin already exists
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
		Name:     "Admin User",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin created: %s", adminEmail)
	return nil
}

// SeedStarterCategories creates a starter taxonomy on a fresh database so
// the public site is browsable before the admin adds anything.
func SeedStarterCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []models.Category{
		{Name: "Breakfast & Brunch", Icon: "coffee", Description: "Early birds and weekend brunchers"},
		{Name: "Burgers & Sandwiches", Icon: "burger", Description: "Handhelds of all kinds"},
		{Name: "Pizza", Icon: "pizza", Description: "Wood-fired, deep dish and by the slice"},
		{Name: "Asian", Icon: "noodles", Description: "Thai, Vietnamese, Japanese, Chinese and Korean"},
		{Name: "Mexican", Icon: "taco", Description: "Tacos, burritos and more"},
		{Name: "Bars & Breweries", Icon: "beer", Description: "Eugene's craft beer scene"},
		{Name: "Coffee & Dessert", Icon: "cake", Description: "Cafes, bakeries and sweet treats"},
	}

	if err := db.Create(&starters).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d starter categories", len(starters))
	return nil
}
