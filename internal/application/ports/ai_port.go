package ports

import (
	"context"

	"github.com/gestorloja/gestor-api/internal/application/dto"
)

// DescriptionService porta de saída para o gerador externo de descrições
// técnicas. O texto devolvido é opaco para o núcleo: armazenado verbatim.
type DescriptionService interface {
	GenerateDescription(ctx context.Context, productName, brand string) (*dto.AIDescriptionDTO, error)
}

// ImageDiscoveryService porta de saída para a busca externa de imagens de
// produto. Devolve até 4 candidatas ordenadas; lista vazia não é erro.
type ImageDiscoveryService interface {
	DiscoverImages(ctx context.Context, productName, brand string) ([]dto.AIImageCandidateDTO, error)
}
