package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/hrushi52/LoonC-R1/config"
	"github.com/hrushi52/LoonC-R1/middleware"
	"github.com/hrushi52/LoonC-R1/models"
	"github.com/hrushi52/LoonC-R1/routes"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "LoonCamp Admin API",
		ServerHeader: "LoonCamp Admin API/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal server error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			if code == fiber.StatusInternalServerError {
				// Never echo internal error text to the client
				log.Printf("Unhandled error: %v", err)
				msg = "Internal server error"
			}

			return c.Status(code).JSON(models.ErrorResponse(msg))
		},
	})

	middleware.SetupMiddleware(app, cfg.CORSAllowOrigins)

	routes.SetupRoutes(app, db, cfg.JWTSecret, cfg.JWTExpiry)

	log.Println("========================================")
	log.Println("LoonCamp Admin API Server")
	log.Printf("Port: %s", cfg.AppPort)
	log.Printf("Database: %s@%s:%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)
	log.Println("========================================")

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
