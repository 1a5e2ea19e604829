// Package schedule gera o cronograma de parcelas de uma venda e deriva o
// status efetivo de cada parcela na leitura.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/pkg/money"
)

// Generate produz as parcelas de uma venda a partir do total, quantidade de
// parcelas, forma de pagamento e data-âncora (criação da venda).
//
// Pagamento em dinheiro: parcela única com vencimento na própria âncora,
// já PAGO. Demais formas: parcela k vence em anchor + k meses-calendário
// (AddDate, não passos fixos de 30 dias), status PENDENTE, inclusive com
// uma única parcela, que vence um mês à frente.
func Generate(total decimal.Decimal, numInstallments int, paymentMethod string, anchor time.Time) ([]entity.Installment, error) {
	if numInstallments < 1 {
		return nil, domain.ErrInvalidPaymentPlan
	}
	if paymentMethod == entity.PaymentDinheiro && numInstallments != 1 {
		return nil, domain.ErrInvalidPaymentPlan
	}

	amounts, err := money.SplitEvenly(total, numInstallments)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	installments := make([]entity.Installment, numInstallments)
	for i, amount := range amounts {
		inst := entity.Installment{
			Number:        i + 1,
			Amount:        amount,
			PaymentMethod: paymentMethod,
			Status:        entity.InstallmentPendente,
			CreatedAt:     anchor,
		}
		if paymentMethod == entity.PaymentDinheiro {
			paid := anchor
			inst.DueDate = anchor
			inst.Status = entity.InstallmentPago
			inst.PaidDate = &paid
		} else {
			inst.DueDate = anchor.AddDate(0, i+1, 0)
		}
		installments[i] = inst
	}
	return installments, nil
}

// EffectiveStatus calcula o status da parcela na data informada.
//
// Qualquer status gravado diferente de PENDENTE é autoritativo (PAGO,
// CANCELADO e até um VENCIDO legado gravado manualmente). Para parcelas
// PENDENTE, vencimento anterior a hoje resulta em VENCIDO.
func EffectiveStatus(inst entity.Installment, today time.Time) string {
	if inst.Status != entity.InstallmentPendente {
		return inst.Status
	}
	if beforeDay(inst.DueDate, today) {
		return entity.InstallmentVencido
	}
	return entity.InstallmentPendente
}

// beforeDay compara apenas as datas (ano/mês/dia), ignorando horário.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
