package optionmodels

// PositionGreeks holds the aggregated greeks of a position alongside the
// per-leg breakdown the aggregate was summed from. The aggregate's IV is
// the unweighted mean of the leg IVs, every other field is the sum of the
// scaled leg values.
type PositionGreeks struct {
	PerLeg     map[OptionSymbol]FullGreeks `json:"per_leg"`
	Aggregated FullGreeks                  `json:"aggregated"`
}
