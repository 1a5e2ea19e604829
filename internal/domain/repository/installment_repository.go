package repository

import (
	"time"

	"github.com/gestorloja/gestor-api/internal/domain/entity"
)

// InstallmentRepository define a porta de persistência de parcelas.
// Após a criação, apenas status/paid_date mudam (pagar ou cancelar).
type InstallmentRepository interface {
	Create(installment *entity.Installment) error
	GetByID(id string) (*entity.Installment, error)
	ListBySale(saleID string) ([]*entity.Installment, error)
	ListByClient(clientID string) ([]*entity.Installment, error)
	ListAll() ([]*entity.Installment, error)
	// MarkPaid grava status PAGO, a data e a forma de pagamento usada.
	MarkPaid(id string, paidDate time.Time, paymentMethod string) error
	// Cancel grava status CANCELADO.
	Cancel(id string) error
}
