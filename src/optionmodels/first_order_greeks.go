package optionmodels

// FirstOrderGreeks holds the first-order sensitivities of a single
// contract. Theta, vega and rho are annualized, matching the raw
// closed-form outputs.
type FirstOrderGreeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
	IV    float64 `json:"iv"`
}

// Scaled multiplies every field by factor except IV, which is a property
// of the contract rather than of the holding.
func (g FirstOrderGreeks) Scaled(factor float64) FirstOrderGreeks {
	return FirstOrderGreeks{
		Delta: g.Delta * factor,
		Gamma: g.Gamma * factor,
		Theta: g.Theta * factor,
		Vega:  g.Vega * factor,
		Rho:   g.Rho * factor,
		IV:    g.IV,
	}
}
