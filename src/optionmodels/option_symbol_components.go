package optionmodels

import (
	"fmt"
	"strconv"
	"time"
)

// OptionSymbolComponents holds the parsed fields of an OCC-style option ticker.
type OptionSymbolComponents struct {
	Underlying  StockSymbol
	Expiration  time.Time
	OptionType  OptionType
	StrikePrice float64
	Symbol      OptionSymbol
}

// NewOptionSymbolComponents parses an OCC-style ticker from its tail: the last
// 8 digits are strike * 1000, preceded by the C/P type code and a yymmdd
// expiration date. Everything before that is the underlying.
func NewOptionSymbolComponents(symbol OptionSymbol) (OptionSymbolComponents, error) {
	ticker := string(symbol)

	// 6-digit date + 1 type char + 8-digit strike
	if len(ticker) < 16 {
		return OptionSymbolComponents{}, fmt.Errorf("NewOptionSymbolComponents: symbol %q is too short to parse", ticker)
	}

	strikePart := ticker[len(ticker)-8:]
	typePart := ticker[len(ticker)-9 : len(ticker)-8]
	datePart := ticker[len(ticker)-15 : len(ticker)-9]
	underlying := ticker[:len(ticker)-15]

	if underlying == "" {
		return OptionSymbolComponents{}, fmt.Errorf("NewOptionSymbolComponents: symbol %q has no underlying", ticker)
	}

	strikeThousandths, err := strconv.Atoi(strikePart)
	if err != nil {
		return OptionSymbolComponents{}, fmt.Errorf("NewOptionSymbolComponents: invalid strike %q: %v", strikePart, err)
	}

	var optionType OptionType
	switch typePart {
	case "C":
		optionType = Call
	case "P":
		optionType = Put
	default:
		return OptionSymbolComponents{}, fmt.Errorf("NewOptionSymbolComponents: invalid option type code %q", typePart)
	}

	expiration, err := time.Parse("060102", datePart)
	if err != nil {
		return OptionSymbolComponents{}, fmt.Errorf("NewOptionSymbolComponents: invalid expiration %q: %v", datePart, err)
	}

	return OptionSymbolComponents{
		Underlying:  NewStockSymbol(underlying),
		Expiration:  expiration,
		OptionType:  optionType,
		StrikePrice: float64(strikeThousandths) / 1000.0,
		Symbol:      symbol,
	}, nil
}
