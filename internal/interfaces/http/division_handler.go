package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/oams-ph/transfer-api/internal/application/dto"
	"github.com/oams-ph/transfer-api/internal/application/usecase"
	"github.com/oams-ph/transfer-api/internal/domain"
)

// DivisionHandler handles HTTP requests for divisions (protected).
type DivisionHandler struct {
	uc *usecase.DivisionUseCase
}

// NewDivisionHandler builds the handler.
func NewDivisionHandler(uc *usecase.DivisionUseCase) *DivisionHandler {
	return &DivisionHandler{uc: uc}
}

// Create handles POST /api/divisions.
func (h *DivisionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDivisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	division, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "division name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
	return c.Status(fiber.StatusCreated).JSON(division)
}

// List handles GET /api/divisions.
func (h *DivisionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
	return c.JSON(list)
}

// GetByID handles GET /api/divisions/:id.
func (h *DivisionHandler) GetByID(c *fiber.Ctx) error {
	division, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
	if division == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "division not found"})
	}
	return c.JSON(division)
}

// Update handles PUT /api/divisions/:id.
func (h *DivisionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDivisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	division, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "division name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
	if division == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "division not found"})
	}
	return c.JSON(division)
}

// Delete handles DELETE /api/divisions/:id (soft delete).
func (h *DivisionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
	return c.JSON(fiber.Map{"message": "division deleted"})
}
