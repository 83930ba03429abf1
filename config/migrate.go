package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/hrushi52/LoonC-R1/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Property{},
		&models.PropertyImage{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully...")

	// Seed the bootstrap admin when configured via environment
	SeedAdmin(db)

	return nil
}
