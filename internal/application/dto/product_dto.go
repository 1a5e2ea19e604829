package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest criação de produto.
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description"`
}

// UpdateProductRequest atualização de produto. Stock fica de fora: muda só
// por movimentação de estoque.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}

// ProductResponse produto para exibição.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
	CategoryID  string          `json:"category_id,omitempty"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
