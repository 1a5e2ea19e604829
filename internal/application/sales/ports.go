package sales

import (
	"context"

	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// SettlementTxRunner executa uma função dentro de uma transação de BD,
// passando repositórios atrelados a essa tx. Garante a atomicidade da
// liquidação: venda, itens, parcelas, estoque e nota entram juntos ou nada
// entra.
type SettlementTxRunner interface {
	RunSettlement(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
