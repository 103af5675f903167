package optionmodels

// FullGreeks combines the first- and second-order sensitivities of a
// single contract into one record.
type FullGreeks struct {
	FirstOrder  FirstOrderGreeks  `json:"first_order"`
	SecondOrder SecondOrderGreeks `json:"second_order"`
}

func NewFullGreeks(first FirstOrderGreeks, second SecondOrderGreeks) FullGreeks {
	return FullGreeks{
		FirstOrder:  first,
		SecondOrder: second,
	}
}

func (g FullGreeks) Scaled(factor float64) FullGreeks {
	return FullGreeks{
		FirstOrder:  g.FirstOrder.Scaled(factor),
		SecondOrder: g.SecondOrder.Scaled(factor),
	}
}

// Value returns the field named by greek. Unknown names return 0.
func (g FullGreeks) Value(greek GreekName) float64 {
	switch greek {
	case GreekDelta:
		return g.FirstOrder.Delta
	case GreekGamma:
		return g.FirstOrder.Gamma
	case GreekTheta:
		return g.FirstOrder.Theta
	case GreekVega:
		return g.FirstOrder.Vega
	case GreekRho:
		return g.FirstOrder.Rho
	case GreekVanna:
		return g.SecondOrder.Vanna
	case GreekVolga:
		return g.SecondOrder.Volga
	case GreekCharm:
		return g.SecondOrder.Charm
	case GreekVeta:
		return g.SecondOrder.Veta
	case GreekSpeed:
		return g.SecondOrder.Speed
	case GreekColor:
		return g.SecondOrder.Color
	default:
		return 0
	}
}
