package entity

import "time"

// Settings são as preferências persistidas da loja (linha única).
// Carregadas uma vez no startup e injetadas explicitamente nos consumidores;
// não há estado global mutável em memória.
type Settings struct {
	ID            string
	CompanyName   string
	WhatsAppPhone string // número E.164 usado no link de pedidos da vitrine
	Theme         string // light, dark
	UpdatedAt     time.Time
}
