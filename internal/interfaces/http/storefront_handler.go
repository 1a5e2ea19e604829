package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/storefront"
	"github.com/gestorloja/gestor-api/internal/application/usecase"
	"github.com/gestorloja/gestor-api/internal/domain"
)

// StorefrontHandler trata a vitrine pública: catálogo somente leitura e o
// fechamento de pedido via WhatsApp. Nenhuma rota exige autenticação.
type StorefrontHandler struct {
	handoffUC  *storefront.OrderHandoffUseCase
	productUC  *usecase.ProductUseCase
	settingsUC *usecase.SettingsUseCase
}

// NewStorefrontHandler constrói o handler.
func NewStorefrontHandler(
	handoffUC *storefront.OrderHandoffUseCase,
	productUC *usecase.ProductUseCase,
	settingsUC *usecase.SettingsUseCase,
) *StorefrontHandler {
	return &StorefrontHandler{handoffUC: handoffUC, productUC: productUC, settingsUC: settingsUC}
}

// ListProducts GET /api/storefront/products: catálogo público.
func (h *StorefrontHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 50)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()
	out, err := h.productUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetSettings GET /api/storefront/settings: nome da loja e tema da vitrine.
func (h *StorefrontHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.settingsUC.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// O telefone não vai para a resposta pública: o deep link é montado no servidor.
	return c.JSON(dto.SettingsResponse{CompanyName: out.CompanyName, Theme: out.Theme})
}

// ComposeOrder godoc
// @Summary      Fechar pedido da vitrine via WhatsApp
// @Description  Compõe a mensagem do pedido e devolve o deep link wa.me
//               pré-preenchido. Não cria venda nem mexe em estoque: a venda
//               só é registrada quando o operador a liquidar no painel.
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StorefrontOrderRequest  true  "Itens e dados do comprador"
// @Success      200   {object}  dto.StorefrontOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/storefront/orders [post]
func (h *StorefrontHandler) ComposeOrder(c *fiber.Ctx) error {
	var in dto.StorefrontOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.handoffUC.ComposeOrder(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pedido precisa de pelo menos um item com quantidade positiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
