package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorloja/gestor-api/pkg/money"
)

// A soma das parcelas deve ser exatamente o total, sem perder centavos.
func TestSplitEvenly_SomaExata(t *testing.T) {
	cases := []struct {
		name  string
		total string
		parts int
	}{
		{"divisão exata", "4200.00", 3},
		{"resto de um centavo", "100.01", 3},
		{"resto de dois centavos", "100.00", 3},
		{"parcela única", "59.90", 1},
		{"muitas parcelas", "999.97", 12},
		{"total zero", "0.00", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total := decimal.RequireFromString(tc.total)
			parts, err := money.SplitEvenly(total, tc.parts)
			require.NoError(t, err)
			require.Len(t, parts, tc.parts)

			sum := decimal.Zero
			for _, p := range parts {
				sum = sum.Add(p)
				assert.True(t, p.Exponent() >= -2, "cada parcela deve ter no máximo 2 casas: %s", p)
			}
			assert.True(t, sum.Equal(total), "soma %s deve igualar o total %s", sum, total)
		})
	}
}

// 100.01 em 3: duas parcelas de 33.33 e a última absorve o resto (33.35).
func TestSplitEvenly_UltimaParcelaAbsorveResto(t *testing.T) {
	parts, err := money.SplitEvenly(decimal.RequireFromString("100.01"), 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.True(t, parts[0].Equal(decimal.RequireFromString("33.33")))
	assert.True(t, parts[1].Equal(decimal.RequireFromString("33.33")))
	assert.True(t, parts[2].Equal(decimal.RequireFromString("33.35")),
		"a última parcela fecha a conta")
}

func TestSplitEvenly_DivisaoExataSemResto(t *testing.T) {
	parts, err := money.SplitEvenly(decimal.RequireFromString("4200.00"), 3)
	require.NoError(t, err)
	for i, p := range parts {
		assert.True(t, p.Equal(decimal.RequireFromString("1400.00")), "parcela %d", i+1)
	}
}

func TestSplitEvenly_ArgumentosInvalidos(t *testing.T) {
	_, err := money.SplitEvenly(decimal.RequireFromString("100.00"), 0)
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	_, err = money.SplitEvenly(decimal.RequireFromString("100.00"), -1)
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	_, err = money.SplitEvenly(decimal.RequireFromString("-10.00"), 2)
	assert.ErrorIs(t, err, money.ErrInvalidArgument)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.400,00", money.FormatBRL(decimal.RequireFromString("1400")))
	assert.Equal(t, "R$ 33,35", money.FormatBRL(decimal.RequireFromString("33.35")))
	assert.Equal(t, "R$ 0,00", money.FormatBRL(decimal.Zero))
}
