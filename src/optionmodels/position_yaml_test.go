package optionmodels

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testConfigYAML = `
engine:
  riskFreeRate: 0.10
analysis:
  pricePoints: 21
positions:
  - name: AAPL Vertical
    underlying: AAPL
    openedAt: 2024-01-02T15:04:05Z
    legs:
      - optionType: call
        strike: "100"
        expiration: 2024-02-16
        side: long
        quantity: 1
        openPrice: "5.00"
        iv: 0.20
      - optionType: call
        strike: "110"
        expiration: 2024-02-16
        side: short
        quantity: 1
        openPrice: "3.00"
        iv: 0.22
`

func TestAnalyzerConfigYAML(t *testing.T) {
	var config AnalyzerConfigYAML
	require.NoError(t, yaml.Unmarshal([]byte(testConfigYAML), &config))

	t.Run("engine overrides and defaults", func(t *testing.T) {
		assert.Equal(t, 0.10, config.RiskFreeRate())
		assert.Equal(t, 0.0, config.DividendYield())
	})

	t.Run("analysis overrides and defaults", func(t *testing.T) {
		assert.Equal(t, 21, config.PricePoints())
		assert.Equal(t, DefaultPriceRangePct, config.PriceRangePct())
		assert.Equal(t, []float64{1, 7, 14, 30, 60, 90}, config.DTERange())
		assert.Equal(t, []float64{7, 30, 60}, config.DeltaDTEs())
	})

	t.Run("get position is case insensitive", func(t *testing.T) {
		position, err := config.GetPosition("aapl vertical")
		assert.NoError(t, err)
		assert.Equal(t, "AAPL Vertical", position.Name)

		_, err = config.GetPosition("missing")
		assert.Error(t, err)
	})

	t.Run("position to model", func(t *testing.T) {
		positionYAML, err := config.GetPosition("AAPL Vertical")
		require.NoError(t, err)

		position, ivs, err := positionYAML.ToModel()
		require.NoError(t, err)

		require.Len(t, position.Legs, 2)
		assert.Equal(t, StockSymbol("AAPL"), position.Underlying)
		assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), position.OpenedAt)
		assert.True(t, position.NetDebitCredit().Equal(decimal.RequireFromString("200")))

		assert.Equal(t, Call, position.Legs[0].Contract.OptionType)
		assert.True(t, position.Legs[0].Contract.Strike.Equal(decimal.RequireFromString("100")))
		assert.Equal(t, time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC), position.Legs[0].Contract.Expiration)

		iv, err := ivs.Get(position.Legs[0].Contract.Symbol)
		assert.NoError(t, err)
		assert.Equal(t, 0.20, iv)

		iv, err = ivs.Get(position.Legs[1].Contract.Symbol)
		assert.NoError(t, err)
		assert.Equal(t, 0.22, iv)
	})

	t.Run("leg to model rejects bad strike", func(t *testing.T) {
		legYAML := LegYAML{
			OptionType: "call",
			Strike:     "not-a-number",
			Expiration: "2024-02-16",
			Side:       "long",
			Quantity:   1,
			OpenPrice:  "5.00",
		}

		_, err := legYAML.ToModel("AAPL")
		assert.Error(t, err)
	})

	t.Run("leg to model rejects bad expiration", func(t *testing.T) {
		legYAML := LegYAML{
			OptionType: "call",
			Strike:     "100",
			Expiration: "02/16/2024",
			Side:       "long",
			Quantity:   1,
			OpenPrice:  "5.00",
		}

		_, err := legYAML.ToModel("AAPL")
		assert.Error(t, err)
	})

	t.Run("leg to model rejects unknown option type", func(t *testing.T) {
		legYAML := LegYAML{
			OptionType: "warrant",
			Strike:     "100",
			Expiration: "2024-02-16",
			Side:       "long",
			Quantity:   1,
			OpenPrice:  "5.00",
		}

		_, err := legYAML.ToModel("AAPL")
		assert.ErrorIs(t, err, InvalidOptionTypeErr)
	})
}
