package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/ports"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// AIUseCase orquestra a geração de descrição e a descoberta de imagens de
// produto. Aplica timeout de 10 s por chamada externa; falha é devolvida ao
// chamador sem retry e sem tocar em nenhum registro já persistido; a tela
// degrada para preenchimento manual.
type AIUseCase struct {
	descriptions ports.DescriptionService
	images       ports.ImageDiscoveryService
	productRepo  repository.ProductRepository
}

// NewAIUseCase constrói o caso de uso.
func NewAIUseCase(
	descriptions ports.DescriptionService,
	images ports.ImageDiscoveryService,
	productRepo repository.ProductRepository,
) *AIUseCase {
	return &AIUseCase{descriptions: descriptions, images: images, productRepo: productRepo}
}

// GenerateDescription chama o serviço de texto e, se ProductID for
// informado, grava o resultado verbatim em Product.Description.
func (uc *AIUseCase) GenerateDescription(ctx context.Context, in dto.AIDescriptionRequest) (*dto.AIDescriptionDTO, error) {
	if in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := uc.descriptions.GenerateDescription(ctx, in.ProductName, in.Brand)
	if err != nil {
		return nil, fmt.Errorf("%w: descrição IA: %w", domain.ErrExternalService, err)
	}

	if in.ProductID != "" {
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if err := uc.productRepo.UpdateDescription(product.ID, result.Description, product.ImageURL); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// DiscoverImages chama o serviço de imagens e escolhe a padrão: a candidata
// com is_main, senão a primeira. Lista vazia devolve DTO sem default.
func (uc *AIUseCase) DiscoverImages(ctx context.Context, in dto.AIDescriptionRequest) (*dto.AIImagesDTO, error) {
	if in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	candidates, err := uc.images.DiscoverImages(ctx, in.ProductName, in.Brand)
	if err != nil {
		return nil, fmt.Errorf("%w: imagens IA: %w", domain.ErrExternalService, err)
	}
	if len(candidates) > 4 {
		candidates = candidates[:4]
	}

	out := &dto.AIImagesDTO{Candidates: candidates}
	out.DefaultURL = DefaultImageURL(candidates)

	if in.ProductID != "" && out.DefaultURL != "" {
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if err := uc.productRepo.UpdateDescription(product.ID, product.Description, out.DefaultURL); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DefaultImageURL aplica a regra de escolha da imagem padrão: a primeira
// marcada com IsMain vence; sem marcação, a primeira da lista.
func DefaultImageURL(candidates []dto.AIImageCandidateDTO) string {
	if len(candidates) == 0 {
		return ""
	}
	for _, c := range candidates {
		if c.IsMain {
			return c.URL
		}
	}
	return candidates[0].URL
}
