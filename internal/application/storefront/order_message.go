// Package storefront compõe o repasse de pedidos da vitrine pública:
// resumo do pedido em texto e deep link de WhatsApp pré-preenchido.
// Fluxo unidirecional e sem confirmação; nenhuma venda é criada aqui.
// O registro no sistema continua sendo um passo manual do operador.
package storefront

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/pkg/money"
)

// OrderHandoffUseCase monta a mensagem de pedido da vitrine.
type OrderHandoffUseCase struct {
	companyName   string
	whatsappPhone string // E.164 sem "+", ex: "5511999990000"
}

// NewOrderHandoffUseCase constrói o caso de uso com os dados da loja
// (settings persistidos, carregados no startup).
func NewOrderHandoffUseCase(companyName, whatsappPhone string) *OrderHandoffUseCase {
	return &OrderHandoffUseCase{companyName: companyName, whatsappPhone: whatsappPhone}
}

// ComposeOrder valida o carrinho e devolve o texto do pedido e o link
// wa.me com a mensagem já codificada.
func (uc *OrderHandoffUseCase) ComposeOrder(ctx context.Context, in dto.StorefrontOrderRequest) (*dto.StorefrontOrderResponse, error) {
	if in.CustomerName == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductName == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	message := ComposeMessage(uc.companyName, in)
	resp := &dto.StorefrontOrderResponse{Message: message}
	if uc.whatsappPhone != "" {
		resp.WhatsAppURL = fmt.Sprintf("https://wa.me/%s?text=%s",
			uc.whatsappPhone, url.QueryEscape(message))
	}
	return resp, nil
}

// ComposeMessage monta o resumo em texto do pedido: itens com quantidade e
// preços, dados do cliente e total geral, formatado em pt-BR.
func ComposeMessage(companyName string, in dto.StorefrontOrderRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Novo pedido — %s*\n\n", companyName)

	total := decimal.Zero
	for _, item := range in.Items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		fmt.Fprintf(&b, "• %dx %s — %s (un. %s)\n",
			item.Quantity, item.ProductName, money.FormatBRL(lineTotal), money.FormatBRL(item.UnitPrice))
	}

	fmt.Fprintf(&b, "\n*Total: %s*\n\n", money.FormatBRL(total))
	fmt.Fprintf(&b, "Cliente: %s\n", in.CustomerName)
	if in.CustomerPhone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", in.CustomerPhone)
	}
	if in.CustomerAddress != "" {
		fmt.Fprintf(&b, "Endereço: %s\n", in.CustomerAddress)
	}
	if in.Notes != "" {
		fmt.Fprintf(&b, "Observações: %s\n", in.Notes)
	}
	return strings.TrimRight(b.String(), "\n")
}
