package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest linha da venda. UnitPrice zero usa o preço atual do produto.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SettleSaleRequest entrada do fluxo de liquidação de venda.
type SettleSaleRequest struct {
	ClientID        string            `json:"client_id"`
	Items           []SaleItemRequest `json:"items"`
	PaymentMethod   string            `json:"payment_method"`
	NumInstallments int               `json:"num_installments"`
	Notes           string            `json:"notes"`
}

// SaleItemResponse snapshot de linha para exibição.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse venda com status efetivo (derivado das parcelas na leitura).
type SaleResponse struct {
	ID              string             `json:"id"`
	ClientID        string             `json:"client_id"`
	Total           decimal.Decimal    `json:"total"`
	PaymentMethod   string             `json:"payment_method"`
	NumInstallments int                `json:"num_installments"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	Items           []SaleItemResponse `json:"items,omitempty"`
	InvoiceNumber   string             `json:"invoice_number,omitempty"`
}

// InstallmentResponse parcela com status efetivo calculado na leitura.
type InstallmentResponse struct {
	ID            string          `json:"id"`
	SaleID        string          `json:"sale_id"`
	Number        int             `json:"number"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date"` // YYYY-MM-DD
	PaidDate      string          `json:"paid_date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status"`
}

// PayInstallmentRequest quitação de parcela.
type PayInstallmentRequest struct {
	PaymentMethod string `json:"payment_method"`
	PaidDate      string `json:"paid_date"` // YYYY-MM-DD; vazio = hoje
}

// InvoiceResponse nota fiscal da venda.
type InvoiceResponse struct {
	ID        string    `json:"id"`
	SaleID    string    `json:"sale_id"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
