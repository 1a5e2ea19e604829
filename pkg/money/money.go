// Package money concentra a aritmética monetária do sistema: divisão de um
// total em parcelas com arredondamento na menor unidade da moeda (centavos)
// e formatação pt-BR para exibição.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidArgument indica total negativo ou número de partes <= 0.
var ErrInvalidArgument = errors.New("money: total negativo ou número de partes inválido")

// SplitEvenly divide total em parts valores de 2 casas decimais cuja soma é
// exatamente total. Regra de resto documentada: as parcelas recebem o valor
// truncado em centavos e a ÚLTIMA parcela absorve o resto do arredondamento.
// Ex.: 100.01 em 3 → {33.33, 33.33, 33.35}.
func SplitEvenly(total decimal.Decimal, parts int) ([]decimal.Decimal, error) {
	if parts <= 0 || total.IsNegative() {
		return nil, ErrInvalidArgument
	}

	n := decimal.NewFromInt(int64(parts))
	base := total.Div(n).RoundDown(2)

	result := make([]decimal.Decimal, parts)
	for i := range result {
		result[i] = base
	}
	// A última parcela fecha a conta: total - base*(parts-1).
	result[parts-1] = total.Sub(base.Mul(decimal.NewFromInt(int64(parts - 1))))
	return result, nil
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor monetário no padrão brasileiro: "R$ 1.400,00".
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return ptBR.Sprintf("R$ %v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
