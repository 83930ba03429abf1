package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hrushi52/LoonC-R1/models"
	"github.com/hrushi52/LoonC-R1/repositories"
)

type PropertyHandler struct {
	Properties *repositories.PropertyRepository
}

func NewPropertyHandler(properties *repositories.PropertyRepository) *PropertyHandler {
	return &PropertyHandler{Properties: properties}
}

// ToggleStatusRequest defines the payload for toggling a boolean flag
type ToggleStatusRequest struct {
	Field string `json:"field"`
	Value bool   `json:"value"`
}

// List - GET /api/properties/list (bearer token required)
// Every property with its ordered images, newest first.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	properties, err := h.Properties.ListAll()
	if err != nil {
		log.Printf("List properties error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch properties."))
	}
	return c.JSON(models.SuccessResponse("", properties))
}

// ListPublic - GET /api/properties/public-list
// Active properties only, top-selling first.
func (h *PropertyHandler) ListPublic(c *fiber.Ctx) error {
	properties, err := h.Properties.ListPublic()
	if err != nil {
		log.Printf("List public properties error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch properties."))
	}
	return c.JSON(models.SuccessResponse("", properties))
}

// Get - GET /api/properties/:id (bearer token required)
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid property ID."))
	}

	property, err := h.Properties.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Property not found."))
		}
		log.Printf("Get property error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to fetch property."))
	}
	return c.JSON(models.SuccessResponse("", property))
}

// Create - POST /api/properties/create (bearer token required)
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var input repositories.CreatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body."))
	}

	property, err := h.Properties.Create(&input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTitleCategoryRequired):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Title and category are required."))
		case errors.Is(err, repositories.ErrDuplicateSlug):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("A property with this title already exists."))
		default:
			log.Printf("Create property error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to create property."))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("Property created successfully.", fiber.Map{
		"id":   property.ID,
		"slug": property.Slug,
	}))
}

// Update - PUT /api/properties/update/:id (bearer token required)
// Partial update: absent fields keep their stored values; a provided
// images list replaces the existing one wholesale.
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid property ID."))
	}

	var input repositories.UpdatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body."))
	}

	if err := h.Properties.Update(id, &input); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPropertyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Property not found."))
		case errors.Is(err, repositories.ErrDuplicateSlug):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("A property with this title already exists."))
		default:
			log.Printf("Update property error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to update property."))
		}
	}

	return c.JSON(models.SuccessResponse("Property updated successfully.", nil))
}

// Delete - DELETE /api/properties/delete/:id (bearer token required)
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid property ID."))
	}

	if err := h.Properties.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Property not found."))
		}
		log.Printf("Delete property error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete property."))
	}

	return c.JSON(models.SuccessResponse("Property deleted successfully.", nil))
}

// ToggleStatus - PATCH /api/properties/toggle-status/:id (bearer token required)
func (h *PropertyHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid property ID."))
	}

	var req ToggleStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body."))
	}

	if err := h.Properties.Toggle(id, req.Field, req.Value); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInvalidToggleField):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid field. Must be is_active or is_top_selling."))
		case errors.Is(err, repositories.ErrPropertyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Property not found."))
		default:
			log.Printf("Toggle status error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to update property status."))
		}
	}

	return c.JSON(models.SuccessResponse("Property status updated successfully.", nil))
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
