package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	appfinance "github.com/gestorloja/gestor-api/internal/application/finance"
)

// DashboardHandler trata o resumo financeiro do painel.
type DashboardHandler struct {
	uc *appfinance.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appfinance.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devolve o resumo do dia e do mês corrente.
// GET /api/dashboard/summary
//
// Resposta: DashboardSummaryDTO (today_revenue, month_revenue, receivables,
// low_stock_count, overdue_clients, date_label). Tudo é recalculado a cada
// chamada; não há cache.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
