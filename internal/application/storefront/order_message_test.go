package storefront_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/storefront"
	"github.com/gestorloja/gestor-api/internal/domain"
)

func orderRequest() dto.StorefrontOrderRequest {
	return dto.StorefrontOrderRequest{
		CustomerName:    "Ana Lima",
		CustomerPhone:   "(11) 98888-7777",
		CustomerAddress: "Rua das Flores, 123",
		Notes:           "Entregar à tarde",
		Items: []dto.StorefrontItemRequest{
			{ProductName: "Vestido Floral", Quantity: 2, UnitPrice: decimal.RequireFromString("140.00")},
			{ProductName: "Bolsa Couro", Quantity: 1, UnitPrice: decimal.RequireFromString("90.00")},
		},
	}
}

func TestComposeMessage(t *testing.T) {
	msg := storefront.ComposeMessage("Loja da Ju", orderRequest())

	assert.Contains(t, msg, "*Novo pedido — Loja da Ju*")
	assert.Contains(t, msg, "2x Vestido Floral — R$ 280,00 (un. R$ 140,00)")
	assert.Contains(t, msg, "1x Bolsa Couro — R$ 90,00 (un. R$ 90,00)")
	assert.Contains(t, msg, "*Total: R$ 370,00*")
	assert.Contains(t, msg, "Cliente: Ana Lima")
	assert.Contains(t, msg, "Telefone: (11) 98888-7777")
	assert.Contains(t, msg, "Endereço: Rua das Flores, 123")
	assert.Contains(t, msg, "Observações: Entregar à tarde")
	assert.False(t, strings.HasSuffix(msg, "\n"), "sem quebra de linha ao final")
}

// Campos opcionais em branco não geram linhas vazias na mensagem.
func TestComposeMessage_CamposOpcionaisOmitidos(t *testing.T) {
	in := orderRequest()
	in.CustomerPhone = ""
	in.CustomerAddress = ""
	in.Notes = ""

	msg := storefront.ComposeMessage("Loja da Ju", in)

	assert.NotContains(t, msg, "Telefone:")
	assert.NotContains(t, msg, "Endereço:")
	assert.NotContains(t, msg, "Observações:")
}

func TestComposeOrder_DeepLinkCodificado(t *testing.T) {
	uc := storefront.NewOrderHandoffUseCase("Loja da Ju", "5511999990000")

	resp, err := uc.ComposeOrder(context.Background(), orderRequest())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/5511999990000?text="))

	parsed, err := url.Parse(resp.WhatsAppURL)
	require.NoError(t, err)
	// O texto do link decodifica exatamente para a mensagem composta
	assert.Equal(t, resp.Message, parsed.Query().Get("text"))
}

// Sem telefone configurado a resposta traz só a mensagem, sem link.
func TestComposeOrder_SemTelefoneConfigurado(t *testing.T) {
	uc := storefront.NewOrderHandoffUseCase("Loja da Ju", "")

	resp, err := uc.ComposeOrder(context.Background(), orderRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.WhatsAppURL)
}

func TestComposeOrder_CarrinhoInvalido(t *testing.T) {
	uc := storefront.NewOrderHandoffUseCase("Loja da Ju", "5511999990000")

	in := orderRequest()
	in.CustomerName = ""
	_, err := uc.ComposeOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome do cliente obrigatório")

	in = orderRequest()
	in.Items = nil
	_, err = uc.ComposeOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "carrinho vazio")

	in = orderRequest()
	in.Items[0].Quantity = 0
	_, err = uc.ComposeOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade zero")

	in = orderRequest()
	in.Items[0].UnitPrice = decimal.RequireFromString("-1")
	_, err = uc.ComposeOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "preço negativo")
}
