package optionmodels

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Leg pairs one contract with a side, a positive quantity, and the price it
// was opened at.
type Leg struct {
	Contract  *OptionContract `json:"contract"`
	Side      PositionSide    `json:"side"`
	Quantity  int             `json:"quantity"`
	OpenPrice decimal.Decimal `json:"open_price"`
}

func NewLeg(contract *OptionContract, side PositionSide, quantity int, openPrice decimal.Decimal) Leg {
	return Leg{
		Contract:  contract,
		Side:      side,
		Quantity:  quantity,
		OpenPrice: openPrice,
	}
}

func (l Leg) Validate() error {
	if l.Contract == nil {
		return fmt.Errorf("Leg.Validate: leg has no contract")
	}

	if err := l.Contract.Validate(); err != nil {
		return fmt.Errorf("Leg.Validate: %w", err)
	}

	if err := l.Side.Validate(); err != nil {
		return fmt.Errorf("Leg.Validate: %w", err)
	}

	if l.Quantity <= 0 {
		return fmt.Errorf("Leg.Validate: %w: %d", NonPositiveQuantityErr, l.Quantity)
	}

	return nil
}

// SignedQuantity is positive for long legs and negative for short legs.
func (l Leg) SignedQuantity() int {
	if l.Side == Short {
		return -l.Quantity
	}

	return l.Quantity
}

// CostBasis is open price x signed quantity x multiplier, as an exact decimal.
func (l Leg) CostBasis() decimal.Decimal {
	scale := decimal.NewFromInt(int64(l.SignedQuantity() * l.Contract.Multiplier))

	return l.OpenPrice.Mul(scale)
}
