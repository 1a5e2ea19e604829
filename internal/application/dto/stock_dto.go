package dto

import "time"

// StockMovementRequest movimentação manual de estoque (ENTRADA ou SAIDA).
type StockMovementRequest struct {
	ProductID   string `json:"product_id"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// StockMovementResponse registro de auditoria de estoque.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
