package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/sales"
	"github.com/gestorloja/gestor-api/internal/domain"
)

// SaleHandler trata liquidação e consulta de vendas (protegido).
type SaleHandler struct {
	settleUC  *sales.SettleSaleUseCase
	invoiceUC *sales.InvoiceUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(settleUC *sales.SettleSaleUseCase, invoiceUC *sales.InvoiceUseCase) *SaleHandler {
	return &SaleHandler{settleUC: settleUC, invoiceUC: invoiceUC}
}

// Settle godoc
// @Summary      Liquidar venda
// @Description  Registra a venda completa em uma transação: cabeçalho, itens
//               (snapshot de nome e preço), cronograma de parcelas, baixa de
//               estoque com auditoria e emissão da nota fiscal.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettleSaleRequest  true  "Venda a liquidar"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Settle(c *fiber.Ctx) error {
	var in dto.SettleSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.settleUC.SettleSale(c.Context(), in)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("estoque insuficiente de %s: pedido %d, disponível %d", stockErr.ProductName, stockErr.Requested, stockErr.Available),
			})
		}
		if errors.Is(err, domain.ErrInvalidPaymentPlan) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAYMENT_PLAN", Message: "plano de pagamento inválido para a forma escolhida"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados da venda inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente ou produto não existe"})
		}
		if errors.Is(err, domain.ErrPartialSettlement) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SETTLEMENT_FAILED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/sales/:id: venda com itens, parcela a parcela e nota.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.settleUC.GetSale(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List GET /api/sales?limit=20&offset=0
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()
	out, err := h.settleUC.ListSales(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetInvoice GET /api/sales/:id/invoice
func (h *SaleHandler) GetInvoice(c *fiber.Ctx) error {
	saleID := c.Params("id")
	out, err := h.invoiceUC.GetBySale(saleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota não encontrada para esta venda"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetInvoicePDF GET /api/sales/:id/invoice/pdf: representação gráfica da nota.
func (h *SaleHandler) GetInvoicePDF(c *fiber.Ctx) error {
	saleID := c.Params("id")
	pdf, number, err := h.invoiceUC.GeneratePDF(c.Context(), saleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota não encontrada para esta venda"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, number))
	return c.Send(pdf)
}
