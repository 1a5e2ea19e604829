package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/ports"
)

// Verificações em tempo de compilação dos portos de IA.
var _ ports.DescriptionService = (*GeminiService)(nil)
var _ ports.ImageDiscoveryService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// descriptionPrompt define o papel do modelo e o formato de saída.
	// response_mime_type=application/json obriga o Gemini a devolver JSON
	// puro, sem blocos de markdown para limpar.
	descriptionPrompt = `Você é um redator técnico de e-commerce brasileiro.
Dado o nome e a marca de um produto, devolva APENAS um objeto JSON com esta estrutura exata:
{
  "description": "<descrição técnica e comercial do produto em português, 2 a 4 frases>"
}

Regras:
- Texto objetivo, voltado a ficha de produto de loja.
- Não invente especificações numéricas que não possam ser inferidas do nome.
- Nenhum texto fora do JSON.`

	// imagesPrompt pede candidatas de imagem pública para o produto.
	imagesPrompt = `Você é um assistente de catálogo de e-commerce.
Dado o nome e a marca de um produto, devolva APENAS um objeto JSON com esta estrutura exata:
{
  "images": [
    {"url": "<URL pública da imagem>", "source": "<domínio de origem>", "is_main": <true|false>}
  ]
}

Regras:
- No máximo 4 imagens, da mais representativa para a menos.
- Marque is_main = true em no máximo uma, a melhor foto de produto.
- Apenas URLs https de imagem direta. Se não houver candidatas confiáveis, devolva {"images": []}.
- Nenhum texto fora do JSON.`
)

// GeminiService adaptador que implementa os portos de descrição e de
// descoberta de imagens chamando a API REST do Google Gemini via net/http.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService constrói o adaptador. model costuma ser "gemini-1.5-flash".
// Com apiKey vazia as chamadas devolvem erro descritivo em vez de panic.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de rede; o use case também impõe WithTimeout
		},
	}
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type descriptionPayload struct {
	Description string `json:"description"`
}

type imagesPayload struct {
	Images []struct {
		URL    string `json:"url"`
		Source string `json:"source"`
		IsMain bool   `json:"is_main"`
	} `json:"images"`
}

// GenerateDescription chama o Gemini com nome e marca do produto e devolve
// o texto gerado. O texto é opaco: o chamador o grava verbatim.
func (s *GeminiService) GenerateDescription(ctx context.Context, productName, brand string) (*dto.AIDescriptionDTO, error) {
	userText := fmt.Sprintf("Produto: %s\nMarca: %s", productName, brand)
	raw, err := s.generate(ctx, descriptionPrompt, userText, 512)
	if err != nil {
		return nil, err
	}

	var payload descriptionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("AI: resposta do modelo não é JSON válido: %w (resposta: %s)", err, raw)
	}
	if strings.TrimSpace(payload.Description) == "" {
		return nil, fmt.Errorf("AI: Gemini devolveu descrição vazia")
	}
	return &dto.AIDescriptionDTO{Description: payload.Description}, nil
}

// DiscoverImages chama o Gemini e devolve até 4 candidatas de imagem.
// Lista vazia não é erro.
func (s *GeminiService) DiscoverImages(ctx context.Context, productName, brand string) ([]dto.AIImageCandidateDTO, error) {
	userText := fmt.Sprintf("Produto: %s\nMarca: %s", productName, brand)
	raw, err := s.generate(ctx, imagesPrompt, userText, 1024)
	if err != nil {
		return nil, err
	}

	var payload imagesPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("AI: resposta do modelo não é JSON válido: %w (resposta: %s)", err, raw)
	}

	out := make([]dto.AIImageCandidateDTO, 0, len(payload.Images))
	for _, img := range payload.Images {
		if !strings.HasPrefix(img.URL, "https://") {
			continue
		}
		out = append(out, dto.AIImageCandidateDTO{
			URL:    img.URL,
			Source: img.Source,
			IsMain: img.IsMain,
		})
	}
	return out, nil
}

// generate faz a chamada HTTP ao Gemini e devolve o texto do primeiro candidato.
func (s *GeminiService) generate(ctx context.Context, systemPrompt, userText string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY não configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: userText}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.3,
			MaxOutputTokens:  maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar resposta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolveu resposta vazia")
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
