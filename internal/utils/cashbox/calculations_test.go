package cashbox_test

import (
	"testing"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/carrocomidas/pos_backend/internal/utils/cashbox"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSignedAmount(t *testing.T) {
	in, err := cashbox.SignedAmount(domain.Movement{Type: domain.Inflow, Amount: dec("25.00")})
	require.NoError(t, err)
	assert.True(t, in.Equal(dec("25.00")))

	out, err := cashbox.SignedAmount(domain.Movement{Type: domain.Outflow, Amount: dec("20.00")})
	require.NoError(t, err)
	assert.True(t, out.Equal(dec("-20.00")))

	_, err = cashbox.SignedAmount(domain.Movement{Type: "BOGUS", Amount: dec("1")})
	assert.Error(t, err)
}

func TestExpectedCash(t *testing.T) {
	tests := []struct {
		name      string
		opening   string
		movements []domain.Movement
		want      string
	}{
		{
			name:    "no movements",
			opening: "100.00",
			want:    "100.00",
		},
		{
			name:    "cash sale inflow",
			opening: "100.00",
			movements: []domain.Movement{
				{Type: domain.Inflow, Amount: dec("25.00"), Reason: "sale"},
			},
			want: "125.00",
		},
		{
			name:    "change given",
			opening: "50.00",
			movements: []domain.Movement{
				{Type: domain.Outflow, Amount: dec("20.00"), Reason: "change"},
			},
			want: "30.00",
		},
		{
			name:    "mixed movements keep exact cents",
			opening: "10.10",
			movements: []domain.Movement{
				{Type: domain.Inflow, Amount: dec("0.10")},
				{Type: domain.Inflow, Amount: dec("0.10")},
				{Type: domain.Outflow, Amount: dec("0.30")},
			},
			want: "10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cashbox.ExpectedCash(dec(tt.opening), tt.movements)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestExpectedCashUnknownType(t *testing.T) {
	_, err := cashbox.ExpectedCash(dec("1.00"), []domain.Movement{{Type: "WAT", Amount: dec("1")}})
	assert.Error(t, err)
}
