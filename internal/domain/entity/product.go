package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo da loja.
// Stock só é alterado via StockMovement (liquidação de vendas ou movimentação manual).
type Product struct {
	ID          string
	Code        string // código único de exibição (ex: "PRD-015")
	Name        string
	Brand       string
	Price       decimal.Decimal // preço de venda, >= 0
	Stock       int             // unidades disponíveis, >= 0
	MinStock    int             // abaixo ou igual dispara alerta de estoque baixo
	CategoryID  string          // referência opcional a Category
	Description string          // texto livre; pode vir do serviço de IA
	ImageURL    string          // imagem padrão escolhida entre os candidatos da IA
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica se o produto está na condição de estoque baixo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
