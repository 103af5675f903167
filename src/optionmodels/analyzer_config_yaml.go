package optionmodels

import (
	"fmt"
	"strings"
)

const (
	DefaultRiskFreeRate  = 0.05
	DefaultDividendYield = 0.0
	DefaultPriceRangePct = 0.3
	DefaultPricePoints   = 41
)

type EngineConfigYAML struct {
	RiskFreeRate  *float64 `yaml:"riskFreeRate,omitempty"`
	DividendYield *float64 `yaml:"dividendYield,omitempty"`
}

type AnalysisConfigYAML struct {
	PriceRangePct float64   `yaml:"priceRangePct,omitempty"`
	PricePoints   int       `yaml:"pricePoints,omitempty"`
	DTERange      []float64 `yaml:"dteRange,omitempty"`
	DeltaDTEs     []float64 `yaml:"deltaDtes,omitempty"`
}

type AnalyzerConfigYAML struct {
	Engine    EngineConfigYAML   `yaml:"engine"`
	Analysis  AnalysisConfigYAML `yaml:"analysis"`
	Positions []PositionYAML     `yaml:"positions"`
}

func (c *AnalyzerConfigYAML) GetPosition(name string) (*PositionYAML, error) {
	name1 := strings.ToLower(name)
	for i, position := range c.Positions {
		name2 := strings.ToLower(position.Name)
		if name1 == name2 {
			return &c.Positions[i], nil
		}
	}

	return nil, fmt.Errorf("AnalyzerConfigYAML: position not found: %s", name)
}

func (c *AnalyzerConfigYAML) RiskFreeRate() float64 {
	if c.Engine.RiskFreeRate == nil {
		return DefaultRiskFreeRate
	}

	return *c.Engine.RiskFreeRate
}

func (c *AnalyzerConfigYAML) DividendYield() float64 {
	if c.Engine.DividendYield == nil {
		return DefaultDividendYield
	}

	return *c.Engine.DividendYield
}

func (c *AnalyzerConfigYAML) PriceRangePct() float64 {
	if c.Analysis.PriceRangePct <= 0 {
		return DefaultPriceRangePct
	}

	return c.Analysis.PriceRangePct
}

func (c *AnalyzerConfigYAML) PricePoints() int {
	if c.Analysis.PricePoints <= 0 {
		return DefaultPricePoints
	}

	return c.Analysis.PricePoints
}

func (c *AnalyzerConfigYAML) DTERange() []float64 {
	if len(c.Analysis.DTERange) == 0 {
		return []float64{1, 7, 14, 30, 60, 90}
	}

	return c.Analysis.DTERange
}

func (c *AnalyzerConfigYAML) DeltaDTEs() []float64 {
	if len(c.Analysis.DeltaDTEs) == 0 {
		return []float64{7, 30, 60}
	}

	return c.Analysis.DeltaDTEs
}
