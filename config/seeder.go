package config

import (
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/hrushi52/LoonC-R1/models"
	"github.com/hrushi52/LoonC-R1/utils"
)

// SeedAdmin creates the bootstrap administrator from ADMIN_EMAIL and
// ADMIN_PASSWORD when both are set. The create-admin endpoint requires
// an already-valid token, so the very first admin has to come from here
// or from the create_admin CLI.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.Admin
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin already exists: %s", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("Failed to check for existing admin: %v", err)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.Admin{Email: email, PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin %s: %v", email, err)
		return
	}
	log.Printf("Admin seeded: %s (ID: %d)", email, admin.ID)
}
