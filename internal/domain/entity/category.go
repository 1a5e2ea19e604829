package entity

import "time"

// Category agrupa produtos. Subcategories é uma lista ordenada de rótulos livres.
// A exclusão é restrita enquanto houver produto referenciando a categoria.
type Category struct {
	ID            string
	Name          string // único
	Subcategories []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
