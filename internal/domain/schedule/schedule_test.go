package schedule_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Venda de 4200.00 no cartão em 3x, âncora 10/01/2026: três parcelas de
// 1400.00 vencendo em 10/02, 10/03 e 10/04, todas PENDENTE.
func TestGenerate_CartaoTresParcelas(t *testing.T) {
	anchor := date(2026, time.January, 10)
	installments, err := schedule.Generate(
		decimal.RequireFromString("4200.00"), 3, entity.PaymentCartao, anchor,
	)
	require.NoError(t, err)
	require.Len(t, installments, 3)

	expectedDue := []time.Time{
		date(2026, time.February, 10),
		date(2026, time.March, 10),
		date(2026, time.April, 10),
	}
	for i, inst := range installments {
		assert.Equal(t, i+1, inst.Number, "numeração 1-based contígua")
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("1400.00")))
		assert.Equal(t, expectedDue[i], inst.DueDate)
		assert.Equal(t, entity.InstallmentPendente, inst.Status)
		assert.Nil(t, inst.PaidDate)
	}
}

// Dinheiro: parcela única que vence na âncora e já nasce PAGO.
func TestGenerate_DinheiroParcelaUnicaJaPaga(t *testing.T) {
	anchor := date(2026, time.March, 5)
	installments, err := schedule.Generate(
		decimal.RequireFromString("250.00"), 1, entity.PaymentDinheiro, anchor,
	)
	require.NoError(t, err)
	require.Len(t, installments, 1)

	inst := installments[0]
	assert.Equal(t, anchor, inst.DueDate, "dinheiro vence na própria âncora")
	assert.Equal(t, entity.InstallmentPago, inst.Status)
	require.NotNil(t, inst.PaidDate)
	assert.Equal(t, anchor, *inst.PaidDate)
}

// Forma a prazo com parcela única ainda vence um mês à frente.
func TestGenerate_BoletoParcelaUnicaVenceUmMesDepois(t *testing.T) {
	anchor := date(2026, time.January, 31)
	installments, err := schedule.Generate(
		decimal.RequireFromString("99.90"), 1, entity.PaymentBoleto, anchor,
	)
	require.NoError(t, err)
	require.Len(t, installments, 1)
	// 31/01 + 1 mês-calendário normaliza para 03/03 (fevereiro tem 28 dias)
	assert.Equal(t, anchor.AddDate(0, 1, 0), installments[0].DueDate)
	assert.Equal(t, entity.InstallmentPendente, installments[0].Status)
}

func TestGenerate_PlanosInvalidos(t *testing.T) {
	anchor := date(2026, time.January, 10)

	_, err := schedule.Generate(decimal.RequireFromString("100.00"), 0, entity.PaymentCartao, anchor)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentPlan, "zero parcelas")

	_, err = schedule.Generate(decimal.RequireFromString("100.00"), 3, entity.PaymentDinheiro, anchor)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentPlan, "dinheiro exige parcela única")
}

// A soma das parcelas geradas é sempre o total da venda.
func TestGenerate_SomaDasParcelasIgualTotal(t *testing.T) {
	anchor := date(2026, time.June, 15)
	total := decimal.RequireFromString("100.01")
	installments, err := schedule.Generate(total, 3, entity.PaymentCrediario, anchor)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, inst := range installments {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(total))
}

func TestEffectiveStatus(t *testing.T) {
	today := date(2026, time.March, 15)
	pending := func(due time.Time) entity.Installment {
		return entity.Installment{Status: entity.InstallmentPendente, DueDate: due}
	}

	// PENDENTE vencida ontem → VENCIDO
	assert.Equal(t, entity.InstallmentVencido,
		schedule.EffectiveStatus(pending(date(2026, time.March, 14)), today))

	// Vence hoje → ainda PENDENTE (só vira VENCIDO no dia seguinte)
	assert.Equal(t, entity.InstallmentPendente,
		schedule.EffectiveStatus(pending(today), today))

	// Vence amanhã → PENDENTE
	assert.Equal(t, entity.InstallmentPendente,
		schedule.EffectiveStatus(pending(date(2026, time.March, 16)), today))

	// PAGO nunca vira VENCIDO, mesmo com vencimento no passado
	paid := entity.Installment{Status: entity.InstallmentPago, DueDate: date(2025, time.January, 1)}
	assert.Equal(t, entity.InstallmentPago, schedule.EffectiveStatus(paid, today))

	// CANCELADO é autoritativo
	cancelled := entity.Installment{Status: entity.InstallmentCancelado, DueDate: date(2025, time.January, 1)}
	assert.Equal(t, entity.InstallmentCancelado, schedule.EffectiveStatus(cancelled, today))

	// VENCIDO legado gravado no banco é respeitado como está
	legacy := entity.Installment{Status: entity.InstallmentVencido, DueDate: date(2099, time.January, 1)}
	assert.Equal(t, entity.InstallmentVencido, schedule.EffectiveStatus(legacy, today))
}

// A derivação é idempotente: aplicar duas vezes dá o mesmo resultado.
func TestEffectiveStatus_Idempotente(t *testing.T) {
	today := date(2026, time.March, 15)
	inst := entity.Installment{Status: entity.InstallmentPendente, DueDate: date(2026, time.March, 1)}

	first := schedule.EffectiveStatus(inst, today)
	inst.Status = first
	second := schedule.EffectiveStatus(inst, today)
	assert.Equal(t, first, second)
}

// O horário não interfere: 23h de ontem ainda é "ontem".
func TestEffectiveStatus_ComparaApenasData(t *testing.T) {
	today := time.Date(2026, time.March, 15, 0, 30, 0, 0, time.UTC)
	inst := entity.Installment{
		Status:  entity.InstallmentPendente,
		DueDate: time.Date(2026, time.March, 15, 23, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, entity.InstallmentPendente, schedule.EffectiveStatus(inst, today),
		"vencimento hoje mais tarde não é vencido")
}
