package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// StockMovementRepository define a porta do log de movimentações de estoque.
// Append-only: não existem Update nem Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	// CountByProduct conta os registros de um produto; usado para impedir
	// a exclusão de produtos com histórico.
	CountByProduct(productID string) (int, error)
}
