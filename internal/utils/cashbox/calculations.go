package cashbox

import (
	"fmt"

	"github.com/carrocomidas/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the drawer-effect sign to a movement amount:
// INFLOW is positive, OUTFLOW negative.
func SignedAmount(m domain.Movement) (decimal.Decimal, error) {
	switch m.Type {
	case domain.Inflow:
		return m.Amount, nil
	case domain.Outflow:
		return m.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown movement type %q for movement %s", m.Type, m.MovementID)
	}
}

// ExpectedCash folds the opening amount with all movements of a register:
// opening + inflows - outflows. This is the audit baseline compared against
// the counted cash at close time.
func ExpectedCash(openingAmount decimal.Decimal, movements []domain.Movement) (decimal.Decimal, error) {
	expected := openingAmount
	for _, m := range movements {
		signed, err := SignedAmount(m)
		if err != nil {
			return decimal.Zero, err
		}
		expected = expected.Add(signed)
	}
	return expected, nil
}
