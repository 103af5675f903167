package optionmodels

import "fmt"

// IVBySymbol maps each contract symbol to its implied volatility,
// expressed as a decimal fraction, e.g. 0.25 for 25%.
type IVBySymbol map[OptionSymbol]float64

func (m IVBySymbol) Get(symbol OptionSymbol) (float64, error) {
	iv, found := m[symbol]
	if !found {
		return 0, fmt.Errorf("IVBySymbol.Get: %w: %s", MissingVolatilityErr, symbol)
	}

	return iv, nil
}
