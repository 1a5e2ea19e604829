package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// InvoiceRepository define a porta de persistência de notas fiscais.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetBySaleID(saleID string) (*entity.Invoice, error)
	// NextSequence devolve o próximo número sequencial: maior sufixo
	// numérico existente + 1 (1 quando não há notas). Deve ser chamado
	// dentro da transação de liquidação; o número é consumido mesmo que
	// um passo posterior falhe (unicidade importa, não ausência de lacunas).
	NextSequence() (int, error)
	List(limit, offset int) ([]*entity.Invoice, error)
}
