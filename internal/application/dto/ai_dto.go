package dto

// AIDescriptionRequest pedido de geração de descrição técnica de produto.
type AIDescriptionRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Brand       string `json:"brand"`
}

// AIDescriptionDTO texto livre devolvido pelo serviço de IA; armazenado
// verbatim em Product.Description, sem parse nem validação de conteúdo.
type AIDescriptionDTO struct {
	Description string `json:"description"`
}

// AIImageCandidateDTO candidata a imagem do produto.
type AIImageCandidateDTO struct {
	URL    string `json:"url"`
	Source string `json:"source"`
	IsMain bool   `json:"is_main"`
}

// AIImagesDTO lista ordenada de até 4 candidatas mais a escolhida como
// padrão: a marcada com is_main, senão a primeira. Lista vazia não é erro.
type AIImagesDTO struct {
	Candidates []AIImageCandidateDTO `json:"candidates"`
	DefaultURL string                `json:"default_url,omitempty"`
}
