package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hrushi52/LoonC-R1/handlers"
	"github.com/hrushi52/LoonC-R1/middleware"
	"github.com/hrushi52/LoonC-R1/repositories"
)

// SetupRoutes wires every endpoint. Each protected route lists the auth
// gate explicitly so the public/protected split is visible in one place.
func SetupRoutes(app *fiber.App, db *gorm.DB, jwtSecret string, jwtExpiry time.Duration) {
	adminRepo := repositories.NewAdminRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)

	authHandler := handlers.NewAuthHandler(adminRepo, jwtSecret, jwtExpiry)
	propertyHandler := handlers.NewPropertyHandler(propertyRepo)

	protected := middleware.Protected(jwtSecret)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "LoonCamp Admin API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	auth := app.Group("/api/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/create-admin", protected, authHandler.CreateAdmin)

	properties := app.Group("/api/properties")
	properties.Get("/public-list", propertyHandler.ListPublic)
	properties.Get("/list", protected, propertyHandler.List)
	properties.Post("/create", protected, propertyHandler.Create)
	properties.Put("/update/:id", protected, propertyHandler.Update)
	properties.Delete("/delete/:id", protected, propertyHandler.Delete)
	properties.Patch("/toggle-status/:id", protected, propertyHandler.ToggleStatus)
	properties.Get("/:id", protected, propertyHandler.Get)

	// Trailing catch-all for unknown routes
	middleware.SetupNotFoundHandler(app)
}
