package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// SaleRepository define a porta de persistência de vendas e itens.
// Vendas e itens são imutáveis após a criação; não há Update.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListByClient(clientID string) ([]*entity.Sale, error)
	// ListAll carrega todas as vendas; usado pelos agregados financeiros,
	// que recalculam tudo a cada leitura (escala de pequeno negócio).
	ListAll() ([]*entity.Sale, error)
}
