package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
)

func expirationInDays(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, days)
}

func strikesOf(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.RequireFromString(v))
	}

	return out
}

// flatIVs maps every leg symbol of the position to the same volatility.
func flatIVs(position optionmodels.Position, sigma float64) optionmodels.IVBySymbol {
	ivs := make(optionmodels.IVBySymbol, len(position.Legs))
	for _, symbol := range position.Symbols() {
		ivs[symbol] = sigma
	}

	return ivs
}

func newLongCall(strike, openPrice string, daysOut int) (optionmodels.Position, optionmodels.IVBySymbol) {
	expiration := expirationInDays(daysOut)
	strikeDecimal := decimal.RequireFromString(strike)

	symbol, err := optionmodels.NewOptionSymbol(optionmodels.OptionSymbolComponents{
		Underlying:  "AAPL",
		Expiration:  expiration,
		OptionType:  optionmodels.Call,
		StrikePrice: strikeDecimal.InexactFloat64(),
	})
	if err != nil {
		panic(err)
	}

	contract := optionmodels.NewOptionContract(symbol, "AAPL", optionmodels.Call, strikeDecimal, expiration)
	leg := optionmodels.NewLeg(&contract, optionmodels.Long, 1, decimal.RequireFromString(openPrice))
	position := optionmodels.NewPosition("Long Call", "AAPL", []optionmodels.Leg{leg}, time.Now().UTC())

	return position, flatIVs(position, 0.20)
}

func newStraddlePosition(daysOut int) (optionmodels.Position, optionmodels.IVBySymbol) {
	position, err := optionmodels.NewStraddle("AAPL", expirationInDays(daysOut),
		decimal.RequireFromString("100"), decimal.RequireFromString("5.00"), decimal.RequireFromString("5.00"))
	if err != nil {
		panic(err)
	}

	return position, flatIVs(position, 0.20)
}

func newButterflyPosition(daysOut int) (optionmodels.Position, optionmodels.IVBySymbol) {
	position, err := optionmodels.NewButterfly("AAPL", optionmodels.Call, expirationInDays(daysOut),
		strikesOf("90", "100", "110"), strikesOf("12.00", "7.00", "3.50"))
	if err != nil {
		panic(err)
	}

	return position, flatIVs(position, 0.20)
}

func newCondorPosition(daysOut int) (optionmodels.Position, optionmodels.IVBySymbol) {
	position, err := optionmodels.NewIronCondor("AAPL", expirationInDays(daysOut),
		strikesOf("80", "90", "110", "120"), strikesOf("1.00", "2.00", "2.00", "1.00"))
	if err != nil {
		panic(err)
	}

	return position, flatIVs(position, 0.20)
}

func newVerticalPosition(daysOut int) (optionmodels.Position, optionmodels.IVBySymbol) {
	position, err := optionmodels.NewVerticalSpread("AAPL", optionmodels.Call, expirationInDays(daysOut),
		strikesOf("100", "110"), strikesOf("5.00", "3.00"))
	if err != nil {
		panic(err)
	}

	return position, flatIVs(position, 0.20)
}
