package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento.
const (
	PaymentDinheiro  = "DINHEIRO"  // à vista, parcela única já paga
	PaymentCartao    = "CARTAO"
	PaymentBoleto    = "BOLETO"
	PaymentCrediario = "CREDIARIO"
)

// Status de venda. VENCIDA nunca é gravado pela aplicação: é derivado
// das parcelas na leitura (finance.DeriveSaleStatus).
const (
	SaleStatusPendente  = "PENDENTE"
	SaleStatusConcluida = "CONCLUIDA"
	SaleStatusVencida   = "VENCIDA"
)

// Sale representa uma venda finalizada. Imutável após a criação; apenas o
// status efetivo muda conforme as parcelas são pagas.
type Sale struct {
	ID              string
	ClientID        string
	Total           decimal.Decimal // soma dos itens
	PaymentMethod   string
	NumInstallments int
	Status          string
	Notes           string
	CreatedAt       time.Time
}

// SaleItem é o snapshot imutável de uma linha da venda. Nome e preço são
// congelados no momento da venda; ProductID fica vazio se o produto for
// excluído depois.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity * UnitPrice
}

// ValidPaymentMethod verifica se a forma de pagamento é reconhecida.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentDinheiro, PaymentCartao, PaymentBoleto, PaymentCrediario:
		return true
	}
	return false
}
