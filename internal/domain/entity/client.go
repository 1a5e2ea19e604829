package entity

import "time"

// Client representa um cliente da loja (vendas e crediário).
type Client struct {
	ID        string
	Name      string
	CpfCnpj   string
	Phone     string
	Email     string
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
