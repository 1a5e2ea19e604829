package inventory

import (
	"context"

	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atrelados a essa tx. Garante atomicidade entre a atualização
// do saldo e o registro de auditoria.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
