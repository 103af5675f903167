package engine

import (
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
	"github.com/jbolinge/option-analyzer/src/pricing"
)

// PayoffCalculator computes payoff diagrams and P&L surfaces for positions.
type PayoffCalculator struct {
	riskFreeRate  float64
	dividendYield float64
}

func NewPayoffCalculator(riskFreeRate, dividendYield float64) *PayoffCalculator {
	return &PayoffCalculator{
		riskFreeRate:  riskFreeRate,
		dividendYield: dividendYield,
	}
}

// ExpirationPayoff is the P&L at expiration for each price in priceRange:
// per leg, intrinsic value times signed quantity and multiplier, less the
// cost basis, summed across legs. Volatility plays no part.
func (c *PayoffCalculator) ExpirationPayoff(position optionmodels.Position, priceRange []float64) []float64 {
	total := make([]float64, len(priceRange))
	for _, leg := range position.Legs {
		strike := leg.Contract.Strike.InexactFloat64()
		scale := float64(leg.SignedQuantity() * leg.Contract.Multiplier)
		openCost := leg.OpenPrice.InexactFloat64() * scale

		for i, s := range priceRange {
			var intrinsic float64
			if leg.Contract.OptionType == optionmodels.Call {
				intrinsic = math.Max(0, s-strike)
			} else {
				intrinsic = math.Max(0, strike-s)
			}

			total[i] += intrinsic*scale - openCost
		}
	}

	return total
}

// TheoreticalPnL is the P&L curve at dte days out, valuing every leg with
// the closed-form price at T = dte/365 and that leg's implied volatility.
// As dte approaches zero it converges to ExpirationPayoff.
func (c *PayoffCalculator) TheoreticalPnL(position optionmodels.Position, priceRange []float64, ivs optionmodels.IVBySymbol, dte float64) ([]float64, error) {
	terms, err := resolveLegs(position, ivs, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("PayoffCalculator.TheoreticalPnL: %w", err)
	}

	return c.pnlRow(terms, priceRange, dte/365.0), nil
}

// PnLSurface evaluates TheoreticalPnL for every entry of dteRange. Row i of
// the result corresponds to dteRange[i]; rows are filled concurrently.
func (c *PayoffCalculator) PnLSurface(position optionmodels.Position, priceRange []float64, ivs optionmodels.IVBySymbol, dteRange []float64) ([][]float64, error) {
	terms, err := resolveLegs(position, ivs, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("PayoffCalculator.PnLSurface: %w", err)
	}

	log.Debugf("PayoffCalculator.PnLSurface: computing %dx%d grid for %s", len(dteRange), len(priceRange), position.Name)

	surface := make([][]float64, len(dteRange))
	forEachRow(len(dteRange), func(row int) {
		surface[row] = c.pnlRow(terms, priceRange, dteRange[row]/365.0)
	})

	return surface, nil
}

func (c *PayoffCalculator) pnlRow(terms []legTerms, priceRange []float64, t float64) []float64 {
	row := make([]float64, len(priceRange))
	for _, leg := range terms {
		for i, s := range priceRange {
			var price float64
			if leg.optionType == optionmodels.Call {
				price = pricing.CallPrice(s, leg.strike, t, c.riskFreeRate, leg.sigma, c.dividendYield)
			} else {
				price = pricing.PutPrice(s, leg.strike, t, c.riskFreeRate, leg.sigma, c.dividendYield)
			}

			row[i] += price*leg.scale - leg.openCost
		}
	}

	return row
}

// PayoffSummary condenses an expiration payoff curve to its extremes and
// breakeven prices.
type PayoffSummary struct {
	MaxProfit  float64   `json:"max_profit"`
	MaxLoss    float64   `json:"max_loss"`
	Breakevens []float64 `json:"breakevens"`
}

// SummarizeExpirationPayoff reports the best and worst P&L on the grid and
// every breakeven, locating zero crossings by linear interpolation between
// adjacent grid points.
func (c *PayoffCalculator) SummarizeExpirationPayoff(priceRange, payoff []float64) (PayoffSummary, error) {
	if len(priceRange) == 0 {
		return PayoffSummary{}, fmt.Errorf("PayoffCalculator.SummarizeExpirationPayoff: %w", optionmodels.EmptyPriceRangeErr)
	}

	if len(payoff) != len(priceRange) {
		return PayoffSummary{}, fmt.Errorf("PayoffCalculator.SummarizeExpirationPayoff: payoff has %d points, price range has %d", len(payoff), len(priceRange))
	}

	maxProfit := payoff[0]
	maxLoss := payoff[0]
	for _, pnl := range payoff[1:] {
		maxProfit = math.Max(maxProfit, pnl)
		maxLoss = math.Min(maxLoss, pnl)
	}

	var breakevens []float64
	for i := range payoff {
		if payoff[i] == 0 {
			// A flat zero run counts once, at its left edge.
			if i > 0 && payoff[i-1] == 0 {
				continue
			}

			breakevens = append(breakevens, priceRange[i])
			continue
		}

		if i > 0 && oppositeSigns(payoff[i-1], payoff[i]) {
			frac := payoff[i-1] / (payoff[i-1] - payoff[i])
			breakevens = append(breakevens, priceRange[i-1]+frac*(priceRange[i]-priceRange[i-1]))
		}
	}

	return PayoffSummary{
		MaxProfit:  maxProfit,
		MaxLoss:    maxLoss,
		Breakevens: breakevens,
	}, nil
}

func oppositeSigns(a, b float64) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}
