package optionmodels

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	t.Run("net debit for a long vertical", func(t *testing.T) {
		position := newTestPosition(
			newTestLeg(Call, "100", Long, 1, "5.00"),
			newTestLeg(Call, "110", Short, 1, "3.00"),
		)

		// (5.00 - 3.00) * 100 shares per contract.
		assert.True(t, position.NetDebitCredit().Equal(decimal.RequireFromString("200")))
	})

	t.Run("net credit is negative", func(t *testing.T) {
		position := newTestPosition(
			newTestLeg(Put, "90", Short, 1, "2.00"),
			newTestLeg(Put, "80", Long, 1, "1.00"),
		)

		assert.True(t, position.NetDebitCredit().Equal(decimal.RequireFromString("-100")))
	})

	t.Run("symbols preserve leg order", func(t *testing.T) {
		first := newTestLeg(Call, "100", Long, 1, "5.00")
		second := newTestLeg(Call, "110", Short, 1, "3.00")
		position := newTestPosition(first, second)

		symbols := position.Symbols()
		assert.Equal(t, []OptionSymbol{first.Contract.Symbol, second.Contract.Symbol}, symbols)
	})

	t.Run("new position assigns an id", func(t *testing.T) {
		position := newTestPosition(newTestLeg(Call, "100", Long, 1, "5.00"))
		assert.NotEmpty(t, position.ID.String())
	})

	t.Run("validate names the failing leg", func(t *testing.T) {
		bad := newTestLeg(Call, "100", Long, 1, "5.00")
		bad.Quantity = -1
		position := newTestPosition(newTestLeg(Call, "100", Long, 1, "5.00"), bad)

		err := position.Validate()
		assert.ErrorIs(t, err, NonPositiveQuantityErr)
		assert.Contains(t, err.Error(), "leg 1")
	})
}
