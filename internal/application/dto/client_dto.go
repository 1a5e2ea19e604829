package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientRequest criação/atualização de cliente.
type ClientRequest struct {
	Name    string `json:"name"`
	CpfCnpj string `json:"cpf_cnpj"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// ClientResponse cliente para exibição.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CpfCnpj   string    `json:"cpf_cnpj,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FinanceSummaryDTO métricas agregadas (cliente ou negócio inteiro).
type FinanceSummaryDTO struct {
	TotalSpent      decimal.Decimal `json:"total_spent"`
	TotalSalesCount int             `json:"total_sales_count"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	PendingCount    int             `json:"pending_count"`
	OverdueAmount   decimal.Decimal `json:"overdue_amount"`
	OverdueCount    int             `json:"overdue_count"`
}

// ClientDetailResponse tela de detalhe do cliente: resumo + vendas + parcelas.
type ClientDetailResponse struct {
	Client       ClientResponse        `json:"client"`
	Summary      FinanceSummaryDTO     `json:"summary"`
	Sales        []SaleResponse        `json:"sales"`        // mais recentes primeiro
	Installments []InstallmentResponse `json:"installments"` // vencimento crescente
}
