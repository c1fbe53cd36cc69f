package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region registry-file

// StrategySpec declares one registry entry: the context a strategy
// serves, its strict-mode toggle, and the caller-supplied fields seeded
// into its initial state.
type StrategySpec struct {
	Context string         `yaml:"context"`
	Strict  bool           `yaml:"strict,omitempty"`
	Seed    map[string]any `yaml:"seed,omitempty"`
}

// Registry is the parsed strategy registry file.
type Registry struct {
	Strategies []StrategySpec `yaml:"strategies"`
}

// #endregion

// #region load

// LoadRegistry reads and validates a YAML registry file.
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("read registry: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry parses raw YAML registry data.
func ParseRegistry(data []byte) (Registry, error) {
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return Registry{}, fmt.Errorf("parse registry: %w", err)
	}

	if len(reg.Strategies) == 0 {
		return Registry{}, fmt.Errorf("registry declares no strategies")
	}

	seen := make(map[string]bool, len(reg.Strategies))
	for i, spec := range reg.Strategies {
		if spec.Context == "" {
			return Registry{}, fmt.Errorf("strategy %d: missing context", i)
		}
		if seen[spec.Context] {
			return Registry{}, fmt.Errorf("strategy %d: duplicate context %q", i, spec.Context)
		}
		seen[spec.Context] = true
	}
	return reg, nil
}

// #endregion
