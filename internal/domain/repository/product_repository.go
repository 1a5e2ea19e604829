package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// ProductRepository define a porta de persistência de produtos.
// O estoque só muda via UpdateStock, chamado pelos fluxos de movimentação.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate bloqueia a linha do produto (SELECT FOR UPDATE) dentro
	// da transação corrente; usado pela liquidação de vendas.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock grava o novo saldo absoluto do produto.
	UpdateStock(id string, stock int) error
	// UpdateDescription grava apenas a descrição (texto vindo da IA).
	UpdateDescription(id string, description, imageURL string) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	Delete(id string) error
}
