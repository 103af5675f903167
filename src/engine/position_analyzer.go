package engine

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
)

// PositionAnalyzer aggregates greeks across a position's legs. All methods
// are pure functions of their inputs; the only held state is the configured
// calculator.
type PositionAnalyzer struct {
	calculator *GreeksCalculator
}

func NewPositionAnalyzer(calculator *GreeksCalculator) *PositionAnalyzer {
	return &PositionAnalyzer{calculator: calculator}
}

// PositionGreeks computes per-leg and aggregated greeks at the given spot.
// Each leg is valued at its own calendar time to expiration and scaled by
// signed quantity times multiplier, except IV which is recorded as
// supplied. The aggregate sums every greek across legs; its IV is the
// unweighted mean of the leg IVs.
func (a *PositionAnalyzer) PositionGreeks(position optionmodels.Position, spot float64, ivs optionmodels.IVBySymbol) (optionmodels.PositionGreeks, error) {
	terms, err := resolveLegs(position, ivs, time.Now().UTC())
	if err != nil {
		return optionmodels.PositionGreeks{}, fmt.Errorf("PositionAnalyzer.PositionGreeks: %w", err)
	}

	perLeg := make(map[optionmodels.OptionSymbol]optionmodels.FullGreeks, len(terms))
	aggregated := optionmodels.FullGreeks{}
	for _, leg := range terms {
		scaled := a.fullAt(spot, leg, leg.timeToExpiry).Scaled(leg.scale)
		perLeg[leg.symbol] = scaled
		aggregated = addGreeks(aggregated, scaled)
	}

	if len(terms) > 0 {
		sigmas := make([]float64, 0, len(terms))
		for _, leg := range terms {
			sigmas = append(sigmas, leg.sigma)
		}

		mean, err := stats.Mean(sigmas)
		if err != nil {
			return optionmodels.PositionGreeks{}, fmt.Errorf("PositionAnalyzer.PositionGreeks: failed to average leg volatilities: %w", err)
		}

		aggregated.FirstOrder.IV = mean
	}

	return optionmodels.PositionGreeks{
		PerLeg:     perLeg,
		Aggregated: aggregated,
	}, nil
}

// GreeksVsPrice recomputes the aggregated greeks at every price point.
// Each returned slice is aligned to priceRange.
func (a *PositionAnalyzer) GreeksVsPrice(position optionmodels.Position, priceRange []float64, ivs optionmodels.IVBySymbol) (map[optionmodels.GreekName][]float64, error) {
	terms, err := resolveLegs(position, ivs, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("PositionAnalyzer.GreeksVsPrice: %w", err)
	}

	curves := newGreekCurves(len(priceRange))
	for i, s := range priceRange {
		aggregated := a.aggregateNow(terms, s)
		for _, name := range optionmodels.AllGreekNames {
			curves[name][i] = aggregated.Value(name)
		}
	}

	return curves, nil
}

// GreeksVsTime recomputes the aggregated greeks at a fixed spot for every
// DTE in dteRange, with every leg valued at T = dte/365.
func (a *PositionAnalyzer) GreeksVsTime(position optionmodels.Position, spot float64, ivs optionmodels.IVBySymbol, dteRange []float64) (map[optionmodels.GreekName][]float64, error) {
	terms, err := resolveLegs(position, ivs, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("PositionAnalyzer.GreeksVsTime: %w", err)
	}

	curves := newGreekCurves(len(dteRange))
	for i, dte := range dteRange {
		aggregated := a.aggregateAt(terms, spot, dte/365.0)
		for _, name := range optionmodels.AllGreekNames {
			curves[name][i] = aggregated.Value(name)
		}
	}

	return curves, nil
}

// DTELabel is the curve key used by DeltaVsPriceAtDTEs, e.g. "30 DTE".
func DTELabel(dte float64) string {
	return fmt.Sprintf("%g DTE", dte)
}

// DeltaVsPriceAtDTEs computes the position's aggregated delta across the
// price range once per requested DTE. Curves are keyed by DTELabel; their
// separation exposes charm visually.
func (a *PositionAnalyzer) DeltaVsPriceAtDTEs(position optionmodels.Position, priceRange []float64, ivs optionmodels.IVBySymbol, dtes []float64) (map[string][]float64, error) {
	terms, err := resolveLegs(position, ivs, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("PositionAnalyzer.DeltaVsPriceAtDTEs: %w", err)
	}

	curves := make(map[string][]float64, len(dtes))
	for _, dte := range dtes {
		deltas := make([]float64, len(priceRange))
		for i, s := range priceRange {
			deltas[i] = a.aggregateAt(terms, s, dte/365.0).FirstOrder.Delta
		}

		curves[DTELabel(dte)] = deltas
	}

	return curves, nil
}

// GreeksSurface computes a (len(dteRange), len(priceRange)) matrix for
// every greek simultaneously. Row i corresponds to dteRange[i]; rows are
// filled concurrently.
func (a *PositionAnalyzer) GreeksSurface(position optionmodels.Position, priceRange []float64, ivs optionmodels.IVBySymbol, dteRange []float64) (map[optionmodels.GreekName][][]float64, error) {
	terms, err := resolveLegs(position, ivs, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("PositionAnalyzer.GreeksSurface: %w", err)
	}

	log.Debugf("PositionAnalyzer.GreeksSurface: computing %dx%d grid for %s", len(dteRange), len(priceRange), position.Name)

	surfaces := make(map[optionmodels.GreekName][][]float64, len(optionmodels.AllGreekNames))
	for _, name := range optionmodels.AllGreekNames {
		surfaces[name] = make([][]float64, len(dteRange))
	}

	forEachRow(len(dteRange), func(row int) {
		t := dteRange[row] / 365.0

		rows := newGreekCurves(len(priceRange))
		for j, s := range priceRange {
			aggregated := a.aggregateAt(terms, s, t)
			for _, name := range optionmodels.AllGreekNames {
				rows[name][j] = aggregated.Value(name)
			}
		}

		for _, name := range optionmodels.AllGreekNames {
			surfaces[name][row] = rows[name]
		}
	})

	return surfaces, nil
}

func (a *PositionAnalyzer) fullAt(spot float64, leg legTerms, t float64) optionmodels.FullGreeks {
	r, q := a.calculator.rates(nil, nil)

	return optionmodels.NewFullGreeks(
		a.calculator.firstOrder(spot, leg.strike, t, leg.sigma, r, q, leg.optionType),
		a.calculator.secondOrder(spot, leg.strike, t, leg.sigma, r, q, leg.optionType),
	)
}

// aggregateAt sums scaled greeks across legs with every leg at time t.
func (a *PositionAnalyzer) aggregateAt(terms []legTerms, spot, t float64) optionmodels.FullGreeks {
	total := optionmodels.FullGreeks{}
	for _, leg := range terms {
		total = addGreeks(total, a.fullAt(spot, leg, t).Scaled(leg.scale))
	}

	return total
}

// aggregateNow sums scaled greeks with each leg valued at its own current
// time to expiration.
func (a *PositionAnalyzer) aggregateNow(terms []legTerms, spot float64) optionmodels.FullGreeks {
	total := optionmodels.FullGreeks{}
	for _, leg := range terms {
		total = addGreeks(total, a.fullAt(spot, leg, leg.timeToExpiry).Scaled(leg.scale))
	}

	return total
}

// addGreeks sums every field except IV, which is aggregated separately.
func addGreeks(total, leg optionmodels.FullGreeks) optionmodels.FullGreeks {
	total.FirstOrder.Delta += leg.FirstOrder.Delta
	total.FirstOrder.Gamma += leg.FirstOrder.Gamma
	total.FirstOrder.Theta += leg.FirstOrder.Theta
	total.FirstOrder.Vega += leg.FirstOrder.Vega
	total.FirstOrder.Rho += leg.FirstOrder.Rho
	total.SecondOrder.Vanna += leg.SecondOrder.Vanna
	total.SecondOrder.Volga += leg.SecondOrder.Volga
	total.SecondOrder.Charm += leg.SecondOrder.Charm
	total.SecondOrder.Veta += leg.SecondOrder.Veta
	total.SecondOrder.Speed += leg.SecondOrder.Speed
	total.SecondOrder.Color += leg.SecondOrder.Color

	return total
}

func newGreekCurves(points int) map[optionmodels.GreekName][]float64 {
	curves := make(map[optionmodels.GreekName][]float64, len(optionmodels.AllGreekNames))
	for _, name := range optionmodels.AllGreekNames {
		curves[name] = make([]float64, points)
	}

	return curves
}
