package optionmodels

import (
	"time"

	"github.com/shopspring/decimal"
)

var testExpiration = time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)

func newTestContract(optionType OptionType, strike string) OptionContract {
	strikeDecimal := decimal.RequireFromString(strike)

	symbol, err := NewOptionSymbol(OptionSymbolComponents{
		Underlying:  "AAPL",
		Expiration:  testExpiration,
		OptionType:  optionType,
		StrikePrice: strikeDecimal.InexactFloat64(),
	})
	if err != nil {
		panic(err)
	}

	return NewOptionContract(symbol, "AAPL", optionType, strikeDecimal, testExpiration)
}

func newTestLeg(optionType OptionType, strike string, side PositionSide, quantity int, openPrice string) Leg {
	contract := newTestContract(optionType, strike)

	return NewLeg(&contract, side, quantity, decimal.RequireFromString(openPrice))
}

func newTestPosition(legs ...Leg) Position {
	return NewPosition("Test Position", "AAPL", legs, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}
