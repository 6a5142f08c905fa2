package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/oams-ph/transfer-api/internal/application/dto"
	apptransfer "github.com/oams-ph/transfer-api/internal/application/transfer"
	"github.com/oams-ph/transfer-api/internal/domain"
)

// TransferHandler handles HTTP requests for the transfer workflow (protected).
type TransferHandler struct {
	uc *apptransfer.WorkflowUseCase
}

// NewTransferHandler builds the handler.
func NewTransferHandler(uc *apptransfer.WorkflowUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create handles POST /api/transfers.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	id, err := h.uc.Create(c.Context(), apptransfer.CreateInputDTO{
		Type:           in.Type,
		From:           in.From,
		DivisionID:     in.DivisionID,
		School:         in.School,
		TransferReason: in.TransferReason,
		TransferType:   in.TransferType,
		StockIDs:       in.ItemStocks,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "transfer created"})
}

// List handles GET /api/transfers.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(list)
}

// GetByID handles GET /api/transfers/:id.
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	t, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return transferError(c, err)
	}
	if t == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transfer not found"})
	}
	return c.JSON(t)
}

// Update handles PUT /api/transfers/:id (partial patch, no issuance).
func (h *TransferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	err := h.uc.Update(c.Context(), c.Params("id"), apptransfer.UpdateInputDTO{
		From:                  in.From,
		TransferReason:        in.TransferReason,
		TransferType:          in.TransferType,
		ApprovedBy:            in.ApprovedBy,
		IssuedBy:              in.IssuedBy,
		ReceivedByName:        in.ReceivedByName,
		ReceivedByDesignation: in.ReceivedByDesignation,
		StockIDs:              in.ItemStocks,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(fiber.Map{"message": "transfer updated"})
}

// Approve handles POST /api/transfers/:id/approve.
func (h *TransferHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.Approve(c.Context(), c.Params("id"), in.ApprovedBy); err != nil {
		return transferError(c, err)
	}
	return c.JSON(fiber.Map{"message": "transfer approved"})
}

// Complete handles POST /api/transfers/:id/complete (runs batch issuance).
func (h *TransferHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	err := h.uc.Complete(c.Context(), apptransfer.CompleteInputDTO{
		TransferID:            c.Params("id"),
		IssuedBy:              in.IssuedBy,
		ReceivedByName:        in.ReceivedByName,
		ReceivedByDesignation: in.ReceivedByDesignation,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(fiber.Map{"message": "transfer completed"})
}

// transferError maps domain errors to HTTP statuses. Typed errors carry a
// displayable message; anything else becomes a generic internal failure.
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingSetting):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SETTING", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientBalance):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
}
