package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/finance"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func inst(status string, amount string, due time.Time) entity.Installment {
	return entity.Installment{
		Status:  status,
		Amount:  decimal.RequireFromString(amount),
		DueDate: due,
	}
}

func TestAggregate_ParticionaPorStatusEfetivo(t *testing.T) {
	today := day(2026, time.March, 15)
	sales := []entity.Sale{
		{Total: decimal.RequireFromString("500.00")},
		{Total: decimal.RequireFromString("300.00")},
	}
	installments := []entity.Installment{
		inst(entity.InstallmentPago, "500.00", day(2026, time.January, 10)),
		// PENDENTE vencida ontem conta como VENCIDO, não como pendente
		inst(entity.InstallmentPendente, "300.00", day(2026, time.March, 14)),
	}

	s := finance.Aggregate(sales, installments, today)

	assert.Equal(t, 2, s.TotalSalesCount)
	assert.True(t, s.TotalSpent.Equal(decimal.RequireFromString("800.00")))
	assert.True(t, s.PaidAmount.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, s.OverdueAmount.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, 1, s.OverdueCount)
	assert.True(t, s.PendingAmount.IsZero())
	assert.Equal(t, 0, s.PendingCount)
}

func TestAggregate_CanceladaForaDeTodosOsMontantes(t *testing.T) {
	today := day(2026, time.March, 15)
	installments := []entity.Installment{
		inst(entity.InstallmentCancelado, "150.00", day(2026, time.January, 1)),
		inst(entity.InstallmentPendente, "50.00", day(2026, time.April, 1)),
	}

	s := finance.Aggregate(nil, installments, today)

	assert.True(t, s.PaidAmount.IsZero())
	assert.True(t, s.OverdueAmount.IsZero())
	assert.True(t, s.PendingAmount.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, 1, s.PendingCount)
}

func TestAggregate_Vazio(t *testing.T) {
	s := finance.Aggregate(nil, nil, day(2026, time.March, 15))
	assert.Equal(t, 0, s.TotalSalesCount)
	assert.True(t, s.TotalSpent.IsZero())
	assert.True(t, s.PaidAmount.IsZero())
}

func TestDeriveSaleStatus(t *testing.T) {
	today := day(2026, time.March, 15)

	tests := []struct {
		name         string
		installments []entity.Installment
		want         string
	}{
		{
			name: "todas pagas",
			installments: []entity.Installment{
				inst(entity.InstallmentPago, "100.00", day(2026, time.January, 10)),
				inst(entity.InstallmentPago, "100.00", day(2026, time.February, 10)),
			},
			want: entity.SaleStatusConcluida,
		},
		{
			name: "alguma vencida prevalece sobre pendente",
			installments: []entity.Installment{
				inst(entity.InstallmentPago, "100.00", day(2026, time.January, 10)),
				inst(entity.InstallmentPendente, "100.00", day(2026, time.February, 10)),
				inst(entity.InstallmentPendente, "100.00", day(2026, time.April, 10)),
			},
			want: entity.SaleStatusVencida,
		},
		{
			name: "pendente em dia",
			installments: []entity.Installment{
				inst(entity.InstallmentPago, "100.00", day(2026, time.January, 10)),
				inst(entity.InstallmentPendente, "100.00", day(2026, time.April, 10)),
			},
			want: entity.SaleStatusPendente,
		},
		{
			name: "pagas e canceladas contam como encerrada",
			installments: []entity.Installment{
				inst(entity.InstallmentPago, "100.00", day(2026, time.January, 10)),
				inst(entity.InstallmentCancelado, "100.00", day(2026, time.February, 10)),
			},
			want: entity.SaleStatusConcluida,
		},
		{
			name:         "sem parcelas",
			installments: nil,
			want:         entity.SaleStatusPendente,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finance.DeriveSaleStatus(tt.installments, today))
		})
	}
}

func TestSortInstallmentsForDisplay(t *testing.T) {
	a := inst(entity.InstallmentPendente, "10.00", day(2026, time.March, 10))
	a.Number = 2
	b := inst(entity.InstallmentPendente, "10.00", day(2026, time.February, 10))
	b.Number = 1
	c := inst(entity.InstallmentPendente, "10.00", day(2026, time.March, 10))
	c.Number = 1

	list := []entity.Installment{a, b, c}
	finance.SortInstallmentsForDisplay(list)

	assert.Equal(t, 1, list[0].Number)
	assert.Equal(t, day(2026, time.February, 10), list[0].DueDate)
	// empate de vencimento resolve pelo número da parcela
	assert.Equal(t, 1, list[1].Number)
	assert.Equal(t, 2, list[2].Number)
}

func TestSortSalesForDisplay(t *testing.T) {
	older := entity.Sale{Total: decimal.Zero, CreatedAt: day(2026, time.January, 1)}
	newer := entity.Sale{Total: decimal.Zero, CreatedAt: day(2026, time.March, 1)}

	list := []entity.Sale{older, newer}
	finance.SortSalesForDisplay(list)

	assert.Equal(t, newer.CreatedAt, list[0].CreatedAt)
	assert.Equal(t, older.CreatedAt, list[1].CreatedAt)
}
