package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hrushi52/LoonC-R1/models"
	"github.com/hrushi52/LoonC-R1/repositories"
	"github.com/hrushi52/LoonC-R1/utils"
)

type AuthHandler struct {
	Admins    *repositories.AdminRepository
	JWTSecret string
	JWTExpiry time.Duration
}

func NewAuthHandler(admins *repositories.AdminRepository, secret string, expiry time.Duration) *AuthHandler {
	return &AuthHandler{Admins: admins, JWTSecret: secret, JWTExpiry: expiry}
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAdminRequest defines the payload for creating another admin
type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login - POST /api/auth/login
// Unknown email and wrong password yield the same response on purpose,
// so callers cannot enumerate accounts.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body."))
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email and password are required."))
	}

	admin, err := h.Admins.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials."))
		}
		log.Printf("Login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error. Please try again."))
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials."))
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, h.JWTSecret, h.JWTExpiry)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error. Please try again."))
	}

	return c.JSON(models.SuccessResponse("Login successful.", fiber.Map{
		"token": token,
		"admin": fiber.Map{
			"id":    admin.ID,
			"email": admin.Email,
		},
	}))
}

// CreateAdmin - POST /api/auth/create-admin (bearer token required)
// The first admin is seeded out-of-band; this endpoint only lets an
// existing admin add another one.
func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var req CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body."))
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email and password are required."))
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Password hash error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error. Please try again."))
	}

	admin, err := h.Admins.Create(req.Email, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Admin with this email already exists."))
		}
		log.Printf("Create admin error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Server error. Please try again."))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("Admin created successfully.", fiber.Map{
		"id":    admin.ID,
		"email": admin.Email,
	}))
}
