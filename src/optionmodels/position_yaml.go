package optionmodels

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type LegYAML struct {
	Symbol     string  `yaml:"symbol,omitempty"`
	OptionType string  `yaml:"optionType"`
	Strike     string  `yaml:"strike"`
	Expiration string  `yaml:"expiration"`
	Side       string  `yaml:"side"`
	Quantity   int     `yaml:"quantity"`
	OpenPrice  string  `yaml:"openPrice"`
	IV         float64 `yaml:"iv"`
}

type PositionYAML struct {
	Name       string    `yaml:"name"`
	Underlying string    `yaml:"underlying"`
	OpenedAt   string    `yaml:"openedAt,omitempty"`
	Legs       []LegYAML `yaml:"legs"`
}

// ToModel converts the DTO into a Leg, deriving the OCC-style symbol from
// the leg's components when no symbol is given explicitly.
func (l *LegYAML) ToModel(underlying StockSymbol) (Leg, error) {
	optionType := OptionType(l.OptionType)
	if err := optionType.Validate(); err != nil {
		return Leg{}, fmt.Errorf("LegYAML.ToModel: %w", err)
	}

	strike, err := decimal.NewFromString(l.Strike)
	if err != nil {
		return Leg{}, fmt.Errorf("LegYAML.ToModel: failed to parse strike %q: %w", l.Strike, err)
	}

	expiration, err := time.Parse("2006-01-02", l.Expiration)
	if err != nil {
		return Leg{}, fmt.Errorf("LegYAML.ToModel: failed to parse expiration %q: %w", l.Expiration, err)
	}

	openPrice, err := decimal.NewFromString(l.OpenPrice)
	if err != nil {
		return Leg{}, fmt.Errorf("LegYAML.ToModel: failed to parse open price %q: %w", l.OpenPrice, err)
	}

	symbol := OptionSymbol(l.Symbol)
	if symbol == "" {
		symbol, err = NewOptionSymbol(OptionSymbolComponents{
			Underlying:  underlying,
			Expiration:  expiration,
			OptionType:  optionType,
			StrikePrice: strike.InexactFloat64(),
		})
		if err != nil {
			return Leg{}, fmt.Errorf("LegYAML.ToModel: %w", err)
		}
	}

	contract := NewOptionContract(symbol, underlying, optionType, strike, expiration)
	leg := NewLeg(&contract, PositionSide(l.Side), l.Quantity, openPrice)

	if err := leg.Validate(); err != nil {
		return Leg{}, fmt.Errorf("LegYAML.ToModel: %w", err)
	}

	return leg, nil
}

// ToModel converts the DTO into a Position plus the implied volatility map
// assembled from the per-leg iv fields.
func (p *PositionYAML) ToModel() (Position, IVBySymbol, error) {
	underlying := NewStockSymbol(p.Underlying)

	openedAt := time.Now().UTC()
	if p.OpenedAt != "" {
		var err error
		openedAt, err = time.Parse(time.RFC3339, p.OpenedAt)
		if err != nil {
			return Position{}, nil, fmt.Errorf("PositionYAML.ToModel: failed to parse openedAt %q: %w", p.OpenedAt, err)
		}
	}

	legs := make([]Leg, 0, len(p.Legs))
	ivs := make(IVBySymbol, len(p.Legs))
	for i, legYAML := range p.Legs {
		leg, err := legYAML.ToModel(underlying)
		if err != nil {
			return Position{}, nil, fmt.Errorf("PositionYAML.ToModel: leg %d: %w", i, err)
		}

		legs = append(legs, leg)
		if legYAML.IV > 0 {
			ivs[leg.Contract.Symbol] = legYAML.IV
		}
	}

	position := NewPosition(p.Name, underlying, legs, openedAt)
	if err := position.Validate(); err != nil {
		return Position{}, nil, fmt.Errorf("PositionYAML.ToModel: %w", err)
	}

	return position, ivs, nil
}
