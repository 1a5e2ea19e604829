package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/inventory"
	"github.com/gestorloja/gestor-api/internal/domain"
)

// StockHandler trata movimentações manuais de estoque (protegido).
type StockHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *inventory.RegisterMovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterMovement POST /api/stock/movements
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegisterMovement(c.Context(), in)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("estoque insuficiente de %s: pedido %d, disponível %d", stockErr.ProductName, stockErr.Requested, stockErr.Available),
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type deve ser ENTRADA ou SAIDA e quantity > 0"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct GET /api/products/:id/movements
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()
	out, err := h.uc.ListByProduct(c.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
