package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User é o operador do sistema (painel administrativo).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
