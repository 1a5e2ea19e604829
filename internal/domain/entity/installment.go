package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de parcela. VENCIDO é sempre derivado na leitura comparando
// DueDate com a data atual; a aplicação nunca o persiste (registros
// legados com VENCIDO gravado são respeitados como estão).
const (
	InstallmentPendente  = "PENDENTE"
	InstallmentPago      = "PAGO"
	InstallmentVencido   = "VENCIDO"
	InstallmentCancelado = "CANCELADO"
)

// Installment é uma parcela do cronograma de pagamento de uma venda.
// Invariantes: a soma das parcelas de uma venda é igual ao total da venda
// e Number forma a sequência contígua 1..NumInstallments.
type Installment struct {
	ID            string
	SaleID        string
	Number        int // 1-based, único por venda
	Amount        decimal.Decimal
	DueDate       time.Time
	PaidDate      *time.Time
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
}
