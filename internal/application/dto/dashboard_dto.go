package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumo financeiro do negócio para o painel.
type DashboardSummaryDTO struct {
	TodayRevenue   decimal.Decimal   `json:"today_revenue"`
	MonthRevenue   decimal.Decimal   `json:"month_revenue"`
	Receivables    FinanceSummaryDTO `json:"receivables"` // pendente/vencido/pago sobre todas as parcelas
	LowStockCount  int               `json:"low_stock_count"`
	OverdueClients int               `json:"overdue_clients"`
	DateLabel      string            `json:"date_label"` // ex: "Março 2026"
}
