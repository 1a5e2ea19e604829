// Package finance dobra vendas e parcelas em métricas de resumo consumidas
// pelas telas de detalhe de cliente, dashboard e relatórios financeiros.
// Sem cache: cada chamada recalcula tudo a partir das coleções persistidas,
// o que é aceitável na escala de registros de um pequeno negócio.
package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/schedule"
)

// Summary são as métricas agregadas de um cliente ou do negócio inteiro.
type Summary struct {
	TotalSpent      decimal.Decimal
	TotalSalesCount int
	PaidAmount      decimal.Decimal
	PendingAmount   decimal.Decimal
	PendingCount    int
	OverdueAmount   decimal.Decimal
	OverdueCount    int
}

// Aggregate particiona as parcelas pelo status efetivo na data informada e
// soma os totais das vendas. Parcelas canceladas ficam fora de todos os
// montantes.
func Aggregate(sales []entity.Sale, installments []entity.Installment, today time.Time) Summary {
	s := Summary{
		TotalSpent:    decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
		OverdueAmount: decimal.Zero,
	}
	for _, sale := range sales {
		s.TotalSpent = s.TotalSpent.Add(sale.Total)
	}
	s.TotalSalesCount = len(sales)

	for _, inst := range installments {
		switch schedule.EffectiveStatus(inst, today) {
		case entity.InstallmentPago:
			s.PaidAmount = s.PaidAmount.Add(inst.Amount)
		case entity.InstallmentVencido:
			s.OverdueAmount = s.OverdueAmount.Add(inst.Amount)
			s.OverdueCount++
		case entity.InstallmentPendente:
			s.PendingAmount = s.PendingAmount.Add(inst.Amount)
			s.PendingCount++
		}
	}
	return s
}

// DeriveSaleStatus calcula o status da venda a partir das parcelas
// (computado na leitura; o campo gravado é apenas informativo).
// Todas pagas ou canceladas → CONCLUIDA; alguma vencida → VENCIDA;
// caso contrário PENDENTE.
func DeriveSaleStatus(installments []entity.Installment, today time.Time) string {
	if len(installments) == 0 {
		return entity.SaleStatusPendente
	}
	open := false
	for _, inst := range installments {
		switch schedule.EffectiveStatus(inst, today) {
		case entity.InstallmentVencido:
			return entity.SaleStatusVencida
		case entity.InstallmentPendente:
			open = true
		}
	}
	if open {
		return entity.SaleStatusPendente
	}
	return entity.SaleStatusConcluida
}

// SortInstallmentsForDisplay ordena parcelas por vencimento crescente
// (desempate pelo número da parcela).
func SortInstallmentsForDisplay(installments []entity.Installment) {
	sort.SliceStable(installments, func(i, j int) bool {
		if installments[i].DueDate.Equal(installments[j].DueDate) {
			return installments[i].Number < installments[j].Number
		}
		return installments[i].DueDate.Before(installments[j].DueDate)
	})
}

// SortSalesForDisplay ordena vendas da mais recente para a mais antiga.
func SortSalesForDisplay(sales []entity.Sale) {
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})
}
