package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAnalyzerConfig(t *testing.T) {
	writeConfig := func(t *testing.T, contents string) string {
		t.Helper()

		path := filepath.Join(t.TempDir(), "analyzer.yaml")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

		return path
	}

	t.Run("loads and interpolates", func(t *testing.T) {
		t.Setenv("TEST_RISK_FREE_RATE", "0.07")

		path := writeConfig(t, `
engine:
  riskFreeRate: ${TEST_RISK_FREE_RATE}
analysis:
  pricePoints: 11
`)

		config, err := LoadAnalyzerConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 0.07, config.RiskFreeRate())
		assert.Equal(t, 11, config.PricePoints())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadAnalyzerConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unset placeholder variable", func(t *testing.T) {
		path := writeConfig(t, "engine:\n  riskFreeRate: ${TEST_UNSET_RATE_VARIABLE}\n")

		_, err := LoadAnalyzerConfig(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_UNSET_RATE_VARIABLE")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "engine: [unbalanced")

		_, err := LoadAnalyzerConfig(path)
		assert.Error(t, err)
	})
}
