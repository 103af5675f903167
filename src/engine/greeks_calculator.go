package engine

import (
	"fmt"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
	"github.com/jbolinge/option-analyzer/src/pricing"
)

// GreeksCalculator wraps the pricing closed forms with configured rate
// defaults and returns structured records.
type GreeksCalculator struct {
	riskFreeRate  float64
	dividendYield float64
}

func NewGreeksCalculator(riskFreeRate, dividendYield float64) *GreeksCalculator {
	return &GreeksCalculator{
		riskFreeRate:  riskFreeRate,
		dividendYield: dividendYield,
	}
}

func (c *GreeksCalculator) rates(rOverride, qOverride *float64) (float64, float64) {
	r := c.riskFreeRate
	if rOverride != nil {
		r = *rOverride
	}

	q := c.dividendYield
	if qOverride != nil {
		q = *qOverride
	}

	return r, q
}

func (c *GreeksCalculator) firstOrder(s, k, t, sigma, r, q float64, optionType optionmodels.OptionType) optionmodels.FirstOrderGreeks {
	var delta, theta, rho float64
	if optionType == optionmodels.Call {
		delta = pricing.CallDelta(s, k, t, r, sigma, q)
		theta = pricing.CallTheta(s, k, t, r, sigma, q)
		rho = pricing.CallRho(s, k, t, r, sigma, q)
	} else {
		delta = pricing.PutDelta(s, k, t, r, sigma, q)
		theta = pricing.PutTheta(s, k, t, r, sigma, q)
		rho = pricing.PutRho(s, k, t, r, sigma, q)
	}

	return optionmodels.FirstOrderGreeks{
		Delta: delta,
		Gamma: pricing.Gamma(s, k, t, r, sigma, q),
		Theta: theta,
		Vega:  pricing.Vega(s, k, t, r, sigma, q),
		Rho:   rho,
		IV:    sigma,
	}
}

func (c *GreeksCalculator) secondOrder(s, k, t, sigma, r, q float64, optionType optionmodels.OptionType) optionmodels.SecondOrderGreeks {
	var charm float64
	if optionType == optionmodels.Call {
		charm = pricing.CallCharm(s, k, t, r, sigma, q)
	} else {
		charm = pricing.PutCharm(s, k, t, r, sigma, q)
	}

	return optionmodels.SecondOrderGreeks{
		Vanna: pricing.Vanna(s, k, t, r, sigma, q),
		Volga: pricing.Volga(s, k, t, r, sigma, q),
		Charm: charm,
		Veta:  pricing.Veta(s, k, t, r, sigma, q),
		Speed: pricing.Speed(s, k, t, r, sigma, q),
		Color: pricing.Color(s, k, t, r, sigma, q),
	}
}

// FirstOrder computes the first-order greeks at (s, k, t, sigma) for one
// contract. A nil rate override falls back to the configured default. The
// record's IV is sigma as supplied.
func (c *GreeksCalculator) FirstOrder(s, k, t, sigma float64, optionType optionmodels.OptionType, rOverride, qOverride *float64) (optionmodels.FirstOrderGreeks, error) {
	if err := optionType.Validate(); err != nil {
		return optionmodels.FirstOrderGreeks{}, fmt.Errorf("GreeksCalculator.FirstOrder: %w", err)
	}

	r, q := c.rates(rOverride, qOverride)

	return c.firstOrder(s, k, t, sigma, r, q, optionType), nil
}

// SecondOrder computes vanna, volga, charm, veta, speed and color.
func (c *GreeksCalculator) SecondOrder(s, k, t, sigma float64, optionType optionmodels.OptionType, rOverride, qOverride *float64) (optionmodels.SecondOrderGreeks, error) {
	if err := optionType.Validate(); err != nil {
		return optionmodels.SecondOrderGreeks{}, fmt.Errorf("GreeksCalculator.SecondOrder: %w", err)
	}

	r, q := c.rates(rOverride, qOverride)

	return c.secondOrder(s, k, t, sigma, r, q, optionType), nil
}

// Full combines the first- and second-order greeks in one record.
func (c *GreeksCalculator) Full(s, k, t, sigma float64, optionType optionmodels.OptionType, rOverride, qOverride *float64) (optionmodels.FullGreeks, error) {
	if err := optionType.Validate(); err != nil {
		return optionmodels.FullGreeks{}, fmt.Errorf("GreeksCalculator.Full: %w", err)
	}

	r, q := c.rates(rOverride, qOverride)

	return optionmodels.NewFullGreeks(
		c.firstOrder(s, k, t, sigma, r, q, optionType),
		c.secondOrder(s, k, t, sigma, r, q, optionType),
	), nil
}
