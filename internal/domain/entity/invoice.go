package entity

import "time"

// InvoiceStatusEmitida é o único status de nota: ela é gerada uma vez,
// na liquidação da venda, e não muda depois.
const InvoiceStatusEmitida = "EMITIDA"

// Invoice é a nota fiscal simplificada emitida para cada venda (1:1).
// Number segue o formato "NF-%03d", sequencial a partir de NF-001.
type Invoice struct {
	ID        string
	SaleID    string
	Number    string
	Status    string
	CreatedAt time.Time
}
