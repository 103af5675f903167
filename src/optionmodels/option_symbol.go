package optionmodels

import (
	"fmt"
	"strings"
)

type OptionSymbol string

func (s OptionSymbol) String() string {
	return string(s)
}

func (s OptionSymbol) Description() (string, error) {
	components, err := NewOptionSymbolComponents(s)
	if err != nil {
		return "", fmt.Errorf("OptionSymbol.Description: failed to parse option symbol: %w", err)
	}

	// Format the expiration date
	expiration := components.Expiration.Format("Jan 2 2006")

	// Format the strike price
	strikePrice := fmt.Sprintf("%.2f", components.StrikePrice)

	// Format the option type
	optionType := "Call"
	if components.OptionType == Put {
		optionType = "Put"
	}

	formatted := fmt.Sprintf("%s %s $%s %s", components.Underlying, expiration, strikePrice, optionType)

	return formatted, nil
}

// NewOptionSymbol constructs an OCC-style option ticker, e.g. AAPL240119C00150000.
func NewOptionSymbol(option OptionSymbolComponents) (OptionSymbol, error) {
	if err := option.OptionType.Validate(); err != nil {
		return "", fmt.Errorf("NewOptionSymbol: %w", err)
	}

	typeCode := "C"
	if option.OptionType == Put {
		typeCode = "P"
	}

	// Format the expiration date components
	year := option.Expiration.Year() % 100 // last two digits of the year
	month := int(option.Expiration.Month())
	day := option.Expiration.Day()

	// Format the strike price to 8 digits
	strikePrice := fmt.Sprintf("%08d", int(option.StrikePrice*1000))

	ticker := fmt.Sprintf("%s%02d%02d%02d%s%s",
		strings.ToUpper(string(option.Underlying)), year, month, day, typeCode, strikePrice)

	return OptionSymbol(ticker), nil
}
