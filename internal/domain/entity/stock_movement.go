package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementEntrada = "ENTRADA"
	MovementSaida   = "SAIDA"
)

// StockMovement é o registro de auditoria append-only das alterações de
// estoque. Nunca é alterado nem excluído; o estoque atual do produto deve
// bater com estoque_inicial + soma(ENTRADA) - soma(SAIDA).
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string
	Quantity    int    // sempre positivo; o sinal vem do Type
	Description string // ex: "Venda <id>" ou nota de ajuste manual
	Reference   string // ID da venda quando a saída vem da liquidação
	CreatedAt   time.Time
}
