package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/sales"
	"github.com/gestorloja/gestor-api/internal/domain"
)

// InstallmentHandler trata quitação e cancelamento de parcelas (protegido).
type InstallmentHandler struct {
	uc *sales.InstallmentUseCase
}

// NewInstallmentHandler constrói o handler.
func NewInstallmentHandler(uc *sales.InstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{uc: uc}
}

// Pay POST /api/installments/:id/pay
// Parcela já paga ou cancelada devolve 409.
func (h *InstallmentHandler) Pay(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.PayInstallmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Pay(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "parcela não encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SETTLED", Message: "parcela já paga ou cancelada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "forma de pagamento ou data inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Cancel POST /api/installments/:id/cancel
func (h *InstallmentHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Cancel(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "parcela não encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "parcela paga não pode ser cancelada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBySale GET /api/sales/:id/installments
func (h *InstallmentHandler) ListBySale(c *fiber.Ctx) error {
	saleID := c.Params("id")
	out, err := h.uc.ListBySale(c.Context(), saleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
