package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/usecase"
	"github.com/gestorloja/gestor-api/internal/domain"
)

// AIHandler trata os endpoints de ficha de produto assistida por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler constrói o handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Gerar descrição de produto com IA
// @Description  Envia nome e marca ao serviço externo e devolve a descrição
//               gerada. Se product_id for informado, grava o texto no produto.
//               Timeout interno de 10 s; falha não altera nenhum registro.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIDescriptionRequest  true  "product_name (obrigatório), brand e product_id (opcionais)"
// @Success      200   {object}  dto.AIDescriptionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var in dto.AIDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.GenerateDescription(c.Context(), in)
	if err != nil {
		return h.mapAIError(c, err)
	}
	return c.JSON(out)
}

// DiscoverImages POST /api/ai/images: até 4 candidatas + imagem padrão.
func (h *AIHandler) DiscoverImages(c *fiber.Ctx) error {
	var in dto.AIDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.DiscoverImages(c.Context(), in)
	if err != nil {
		return h.mapAIError(c, err)
	}
	return c.JSON(out)
}

func (h *AIHandler) mapAIError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_name é obrigatório"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	if errors.Is(err, domain.ErrExternalService) {
		if isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "o serviço de IA demorou demais; tente de novo"})
		}
		if strings.Contains(err.Error(), "GEMINI_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "o serviço de IA não está configurado"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// isTimeout detecta timeout/cancelamento de contexto na mensagem de erro.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelamento")
}
