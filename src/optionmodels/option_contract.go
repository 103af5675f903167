package optionmodels

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultMultiplier = 100

// OptionContract is an immutable description of a single listed option.
// Strike is kept as an exact decimal; the pricing layer converts to float64
// at the point of computation.
type OptionContract struct {
	Symbol        OptionSymbol    `json:"symbol"`
	Underlying    StockSymbol     `json:"underlying"`
	OptionType    OptionType      `json:"option_type"`
	Strike        decimal.Decimal `json:"strike"`
	Expiration    time.Time       `json:"expiration"`
	ExerciseStyle ExerciseStyle   `json:"exercise_style"`
	Multiplier    int             `json:"multiplier"`
}

func NewOptionContract(symbol OptionSymbol, underlying StockSymbol, optionType OptionType, strike decimal.Decimal, expiration time.Time) OptionContract {
	return OptionContract{
		Symbol:        symbol,
		Underlying:    underlying,
		OptionType:    optionType,
		Strike:        strike,
		Expiration:    expiration,
		ExerciseStyle: American,
		Multiplier:    DefaultMultiplier,
	}
}

func (c OptionContract) Validate() error {
	if err := c.OptionType.Validate(); err != nil {
		return fmt.Errorf("OptionContract.Validate: %w", err)
	}

	if err := c.ExerciseStyle.Validate(); err != nil {
		return fmt.Errorf("OptionContract.Validate: %w", err)
	}

	if !c.Strike.IsPositive() {
		return fmt.Errorf("OptionContract.Validate: %w: %s", NonPositiveStrikeErr, c.Strike)
	}

	if c.Multiplier <= 0 {
		return fmt.Errorf("OptionContract.Validate: %w: %d", NonPositiveMultiplierErr, c.Multiplier)
	}

	return nil
}

// DaysToExpiration returns the number of whole calendar days between now and
// the contract's expiration. Negative for expired contracts.
func (c OptionContract) DaysToExpiration(now time.Time) int {
	expiry := time.Date(c.Expiration.Year(), c.Expiration.Month(), c.Expiration.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return int(expiry.Sub(today).Hours() / 24.0)
}

// TimeToExpiration returns the year fraction between now and the contract's
// expiration, floored at zero for expired contracts.
func (c OptionContract) TimeToExpiration(now time.Time) float64 {
	days := c.DaysToExpiration(now)
	if days < 0 {
		return 0
	}

	return float64(days) / 365.0
}
