package engine

import (
	"fmt"
	"time"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
)

// legTerms snapshots the per-leg inputs the grid loops need, so a surface
// resolves every volatility up front and cannot fail halfway through.
type legTerms struct {
	symbol       optionmodels.OptionSymbol
	optionType   optionmodels.OptionType
	strike       float64
	sigma        float64
	scale        float64
	openCost     float64
	timeToExpiry float64
}

func resolveLegs(position optionmodels.Position, ivs optionmodels.IVBySymbol, now time.Time) ([]legTerms, error) {
	terms := make([]legTerms, 0, len(position.Legs))
	for _, leg := range position.Legs {
		sigma, err := ivs.Get(leg.Contract.Symbol)
		if err != nil {
			return nil, fmt.Errorf("resolveLegs: %w", err)
		}

		scale := float64(leg.SignedQuantity() * leg.Contract.Multiplier)

		terms = append(terms, legTerms{
			symbol:       leg.Contract.Symbol,
			optionType:   leg.Contract.OptionType,
			strike:       leg.Contract.Strike.InexactFloat64(),
			sigma:        sigma,
			scale:        scale,
			openCost:     leg.OpenPrice.InexactFloat64() * scale,
			timeToExpiry: leg.Contract.TimeToExpiration(now),
		})
	}

	return terms, nil
}
