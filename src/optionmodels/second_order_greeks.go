package optionmodels

// SecondOrderGreeks holds the higher-order sensitivities of a single
// contract: vanna, volga, charm, veta, speed and color.
type SecondOrderGreeks struct {
	Vanna float64 `json:"vanna"`
	Volga float64 `json:"volga"`
	Charm float64 `json:"charm"`
	Veta  float64 `json:"veta"`
	Speed float64 `json:"speed"`
	Color float64 `json:"color"`
}

func (g SecondOrderGreeks) Scaled(factor float64) SecondOrderGreeks {
	return SecondOrderGreeks{
		Vanna: g.Vanna * factor,
		Volga: g.Volga * factor,
		Charm: g.Charm * factor,
		Veta:  g.Veta * factor,
		Speed: g.Speed * factor,
		Color: g.Color * factor,
	}
}
