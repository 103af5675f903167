package optionmodels

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func newStrategyLeg(underlying StockSymbol, optionType OptionType, expiration time.Time, strike decimal.Decimal, side PositionSide, quantity int, openPrice decimal.Decimal) (Leg, error) {
	symbol, err := NewOptionSymbol(OptionSymbolComponents{
		Underlying:  underlying,
		Expiration:  expiration,
		OptionType:  optionType,
		StrikePrice: strike.InexactFloat64(),
	})
	if err != nil {
		return Leg{}, fmt.Errorf("newStrategyLeg: %w", err)
	}

	contract := NewOptionContract(symbol, underlying, optionType, strike, expiration)

	return NewLeg(&contract, side, quantity, openPrice), nil
}

// NewVerticalSpread builds a two-leg spread, long the first strike and short
// the second, in the same option type and expiration.
func NewVerticalSpread(underlying StockSymbol, optionType OptionType, expiration time.Time, strikes, openPrices []decimal.Decimal) (Position, error) {
	if len(strikes) != 2 || len(openPrices) != 2 {
		return Position{}, fmt.Errorf("NewVerticalSpread: expected 2 strikes and 2 open prices, got %d and %d", len(strikes), len(openPrices))
	}

	sides := []PositionSide{Long, Short}

	legs := make([]Leg, 0, 2)
	for i := range strikes {
		leg, err := newStrategyLeg(underlying, optionType, expiration, strikes[i], sides[i], 1, openPrices[i])
		if err != nil {
			return Position{}, fmt.Errorf("NewVerticalSpread: %w", err)
		}

		legs = append(legs, leg)
	}

	name := fmt.Sprintf("%s %s/%s Vertical", underlying, strikes[0], strikes[1])

	return NewPosition(name, underlying, legs, time.Now().UTC()), nil
}

// NewButterfly builds a long wing / short body / long wing spread with leg
// quantities 1/2/1 in the same option type and expiration.
func NewButterfly(underlying StockSymbol, optionType OptionType, expiration time.Time, strikes, openPrices []decimal.Decimal) (Position, error) {
	if len(strikes) != 3 || len(openPrices) != 3 {
		return Position{}, fmt.Errorf("NewButterfly: expected 3 strikes and 3 open prices, got %d and %d", len(strikes), len(openPrices))
	}

	sides := []PositionSide{Long, Short, Long}
	quantities := []int{1, 2, 1}

	legs := make([]Leg, 0, 3)
	for i := range strikes {
		leg, err := newStrategyLeg(underlying, optionType, expiration, strikes[i], sides[i], quantities[i], openPrices[i])
		if err != nil {
			return Position{}, fmt.Errorf("NewButterfly: %w", err)
		}

		legs = append(legs, leg)
	}

	name := fmt.Sprintf("%s %s/%s/%s Butterfly", underlying, strikes[0], strikes[1], strikes[2])

	return NewPosition(name, underlying, legs, time.Now().UTC()), nil
}

// NewIronCondor builds a long put spread plus a short call spread. Strikes
// are ordered put long, put short, call short, call long.
func NewIronCondor(underlying StockSymbol, expiration time.Time, strikes, openPrices []decimal.Decimal) (Position, error) {
	if len(strikes) != 4 || len(openPrices) != 4 {
		return Position{}, fmt.Errorf("NewIronCondor: expected 4 strikes and 4 open prices, got %d and %d", len(strikes), len(openPrices))
	}

	optionTypes := []OptionType{Put, Put, Call, Call}
	sides := []PositionSide{Long, Short, Short, Long}

	legs := make([]Leg, 0, 4)
	for i := range strikes {
		leg, err := newStrategyLeg(underlying, optionTypes[i], expiration, strikes[i], sides[i], 1, openPrices[i])
		if err != nil {
			return Position{}, fmt.Errorf("NewIronCondor: %w", err)
		}

		legs = append(legs, leg)
	}

	name := fmt.Sprintf("%s %s/%s/%s/%s IC", underlying, strikes[0], strikes[1], strikes[2], strikes[3])

	return NewPosition(name, underlying, legs, time.Now().UTC()), nil
}

// NewStraddle builds a long call and a long put at the same strike and
// expiration.
func NewStraddle(underlying StockSymbol, expiration time.Time, strike decimal.Decimal, callOpenPrice, putOpenPrice decimal.Decimal) (Position, error) {
	callLeg, err := newStrategyLeg(underlying, Call, expiration, strike, Long, 1, callOpenPrice)
	if err != nil {
		return Position{}, fmt.Errorf("NewStraddle: %w", err)
	}

	putLeg, err := newStrategyLeg(underlying, Put, expiration, strike, Long, 1, putOpenPrice)
	if err != nil {
		return Position{}, fmt.Errorf("NewStraddle: %w", err)
	}

	name := fmt.Sprintf("%s %s Straddle", underlying, strike)

	return NewPosition(name, underlying, []Leg{callLeg, putLeg}, time.Now().UTC()), nil
}
