package config

// #region imports
import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// #endregion

// #region engine-config

// Engine holds process configuration, read from the environment.
type Engine struct {
	DBPath       string        `env:"ENGINE_DB" envDefault:"monetization.db"`
	ModelAddr    string        `env:"MODEL_ADDR" envDefault:"localhost:50051"`
	RegistryPath string        `env:"ENGINE_REGISTRY" envDefault:"registry.yaml"`
	Context      string        `env:"ENGINE_CONTEXT" envDefault:"default"`
	Strict       bool          `env:"ENGINE_STRICT" envDefault:"false"`
	RiskGate     bool          `env:"ENGINE_RISK_GATE" envDefault:"false"`
	CallTimeout  time.Duration `env:"ENGINE_CALL_TIMEOUT" envDefault:"30s"`
}

// FromEnv parses engine configuration from the environment.
func FromEnv() (Engine, error) {
	var c Engine
	if err := env.Parse(&c); err != nil {
		return Engine{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// #endregion
