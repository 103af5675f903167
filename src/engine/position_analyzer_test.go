package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
	"github.com/jbolinge/option-analyzer/src/utils"
)

func newAnalyzer() *PositionAnalyzer {
	return NewPositionAnalyzer(NewGreeksCalculator(0.05, 0.0))
}

func TestPositionGreeks(t *testing.T) {
	analyzer := newAnalyzer()

	t.Run("single long call", func(t *testing.T) {
		position, ivs := newLongCall("100", "5.00", 30)

		result, err := analyzer.PositionGreeks(position, 100, ivs)
		require.NoError(t, err)
		require.Len(t, result.PerLeg, 1)

		leg := result.PerLeg[position.Symbols()[0]]
		assert.Equal(t, leg.FirstOrder.Delta, result.Aggregated.FirstOrder.Delta)
		assert.Equal(t, leg.FirstOrder.Gamma, result.Aggregated.FirstOrder.Gamma)
		assert.Equal(t, leg.SecondOrder.Vanna, result.Aggregated.SecondOrder.Vanna)

		assert.Greater(t, result.Aggregated.FirstOrder.Delta, 0.0)
		assert.Less(t, result.Aggregated.FirstOrder.Delta, 100.0)
		assert.InDelta(t, 0.20, result.Aggregated.FirstOrder.IV, 1e-12)
	})

	t.Run("leg greeks are scaled by signed quantity and multiplier", func(t *testing.T) {
		position, ivs := newVerticalPosition(30)

		result, err := analyzer.PositionGreeks(position, 100, ivs)
		require.NoError(t, err)
		require.Len(t, result.PerLeg, 2)

		long := result.PerLeg[position.Symbols()[0]]
		short := result.PerLeg[position.Symbols()[1]]
		assert.Positive(t, long.FirstOrder.Delta)
		assert.Negative(t, short.FirstOrder.Delta)
		assert.Negative(t, short.FirstOrder.Gamma)

		// Scaling leaves the per leg volatility untouched.
		assert.Equal(t, 0.20, long.FirstOrder.IV)
		assert.Equal(t, 0.20, short.FirstOrder.IV)
	})

	t.Run("straddle is nearly delta neutral", func(t *testing.T) {
		position, ivs := newStraddlePosition(30)

		result, err := analyzer.PositionGreeks(position, 100, ivs)
		require.NoError(t, err)
		require.Len(t, result.PerLeg, 2)

		assert.Less(t, result.Aggregated.FirstOrder.Delta, 20.0)
		assert.Greater(t, result.Aggregated.FirstOrder.Delta, -20.0)

		callLeg := result.PerLeg[position.Symbols()[0]]
		assert.InEpsilon(t, 2*callLeg.FirstOrder.Gamma, result.Aggregated.FirstOrder.Gamma, 1e-9)
	})

	t.Run("vertical spread keeps positive delta", func(t *testing.T) {
		position, ivs := newVerticalPosition(30)

		result, err := analyzer.PositionGreeks(position, 100, ivs)
		require.NoError(t, err)

		assert.Greater(t, result.Aggregated.FirstOrder.Delta, 0.0)
	})

	t.Run("aggregate volatility is the unweighted mean", func(t *testing.T) {
		position, ivs := newVerticalPosition(30)
		symbols := position.Symbols()
		ivs[symbols[0]] = 0.20
		ivs[symbols[1]] = 0.30

		result, err := analyzer.PositionGreeks(position, 100, ivs)
		require.NoError(t, err)

		assert.InDelta(t, 0.25, result.Aggregated.FirstOrder.IV, 1e-12)
	})

	t.Run("empty position", func(t *testing.T) {
		position := optionmodels.NewPosition("Empty", "AAPL", nil, time.Now().UTC())

		result, err := analyzer.PositionGreeks(position, 100, optionmodels.IVBySymbol{})
		require.NoError(t, err)

		assert.Empty(t, result.PerLeg)
		assert.Equal(t, optionmodels.FullGreeks{}, result.Aggregated)
	})

	t.Run("missing volatility", func(t *testing.T) {
		position, ivs := newVerticalPosition(30)
		delete(ivs, position.Symbols()[1])

		_, err := analyzer.PositionGreeks(position, 100, ivs)
		assert.ErrorIs(t, err, optionmodels.MissingVolatilityErr)
	})
}

func TestGreeksVsPrice(t *testing.T) {
	analyzer := newAnalyzer()
	position, ivs := newLongCall("100", "5.00", 30)
	priceRange := utils.Linspace(60, 140, 41)

	curves, err := analyzer.GreeksVsPrice(position, priceRange, ivs)
	require.NoError(t, err)
	require.Len(t, curves, len(optionmodels.AllGreekNames))

	for _, name := range optionmodels.AllGreekNames {
		require.Len(t, curves[name], len(priceRange), "curve %s", name)
	}

	deltas := curves[optionmodels.GreekDelta]
	for i := 1; i < len(deltas); i++ {
		assert.GreaterOrEqual(t, deltas[i], deltas[i-1], "call delta must rise with price")
	}

	t.Run("missing volatility", func(t *testing.T) {
		_, err := analyzer.GreeksVsPrice(position, priceRange, optionmodels.IVBySymbol{})
		assert.ErrorIs(t, err, optionmodels.MissingVolatilityErr)
	})
}

func TestGreeksVsTime(t *testing.T) {
	analyzer := newAnalyzer()
	position, ivs := newLongCall("100", "5.00", 60)
	dteRange := []float64{0, 7, 14, 30, 60}

	curves, err := analyzer.GreeksVsTime(position, 120, ivs, dteRange)
	require.NoError(t, err)
	require.Len(t, curves, len(optionmodels.AllGreekNames))

	for _, name := range optionmodels.AllGreekNames {
		require.Len(t, curves[name], len(dteRange), "curve %s", name)
	}

	t.Run("at zero days an in the money call is pure stock", func(t *testing.T) {
		assert.Equal(t, 100.0, curves[optionmodels.GreekDelta][0])
		assert.Equal(t, 0.0, curves[optionmodels.GreekGamma][0])
		assert.Equal(t, 0.0, curves[optionmodels.GreekVega][0])
	})

	t.Run("missing volatility", func(t *testing.T) {
		_, err := analyzer.GreeksVsTime(position, 120, optionmodels.IVBySymbol{}, dteRange)
		assert.ErrorIs(t, err, optionmodels.MissingVolatilityErr)
	})
}

func TestDeltaVsPriceAtDTEs(t *testing.T) {
	analyzer := newAnalyzer()
	position, ivs := newLongCall("100", "5.00", 60)
	priceRange := []float64{90, 100, 110}

	curves, err := analyzer.DeltaVsPriceAtDTEs(position, priceRange, ivs, []float64{7, 30})
	require.NoError(t, err)
	require.Len(t, curves, 2)

	require.Contains(t, curves, "7 DTE")
	require.Contains(t, curves, "30 DTE")
	require.Len(t, curves["7 DTE"], len(priceRange))
	require.Len(t, curves["30 DTE"], len(priceRange))

	// Out of the money delta decays toward zero as expiration nears.
	assert.Greater(t, curves["30 DTE"][0]-curves["7 DTE"][0], 1.0)

	t.Run("missing volatility", func(t *testing.T) {
		_, err := analyzer.DeltaVsPriceAtDTEs(position, priceRange, optionmodels.IVBySymbol{}, []float64{7})
		assert.ErrorIs(t, err, optionmodels.MissingVolatilityErr)
	})
}

func TestGreeksSurface(t *testing.T) {
	analyzer := newAnalyzer()
	position, ivs := newStraddlePosition(60)
	priceRange := utils.Linspace(80, 120, 21)
	dteRange := []float64{7, 30}

	surfaces, err := analyzer.GreeksSurface(position, priceRange, ivs, dteRange)
	require.NoError(t, err)
	require.Len(t, surfaces, len(optionmodels.AllGreekNames))

	for _, name := range optionmodels.AllGreekNames {
		require.Len(t, surfaces[name], len(dteRange), "surface %s", name)
		for _, row := range surfaces[name] {
			require.Len(t, row, len(priceRange), "surface %s", name)
		}
	}

	t.Run("delta rows match the per DTE curves", func(t *testing.T) {
		curves, err := analyzer.DeltaVsPriceAtDTEs(position, priceRange, ivs, dteRange)
		require.NoError(t, err)

		assert.Equal(t, curves["7 DTE"], surfaces[optionmodels.GreekDelta][0])
		assert.Equal(t, curves["30 DTE"], surfaces[optionmodels.GreekDelta][1])
	})

	t.Run("repeated runs are identical", func(t *testing.T) {
		again, err := analyzer.GreeksSurface(position, priceRange, ivs, dteRange)
		require.NoError(t, err)

		assert.Equal(t, surfaces, again)
	})

	t.Run("missing volatility", func(t *testing.T) {
		_, err := analyzer.GreeksSurface(position, priceRange, optionmodels.IVBySymbol{}, dteRange)
		assert.ErrorIs(t, err, optionmodels.MissingVolatilityErr)
	})
}
