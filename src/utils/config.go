package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jbolinge/option-analyzer/src/optionmodels"
)

// LoadAnalyzerConfig reads a YAML config file, resolves ${VAR}
// placeholders from the environment and unmarshals the result.
func LoadAnalyzerConfig(path string) (*optionmodels.AnalyzerConfigYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadAnalyzerConfig: failed to read config: %w", err)
	}

	resolved, err := InterpolateEnv(data)
	if err != nil {
		return nil, fmt.Errorf("LoadAnalyzerConfig: %w", err)
	}

	var config optionmodels.AnalyzerConfigYAML
	if err := yaml.Unmarshal(resolved, &config); err != nil {
		return nil, fmt.Errorf("LoadAnalyzerConfig: failed to parse %s: %w", path, err)
	}

	return &config, nil
}
