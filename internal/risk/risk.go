package risk

// #region imports
import (
	"context"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/orchestrator"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/state"
)

// #endregion

// #region config

// GateConfig holds thresholds for gate decisions.
type GateConfig struct {
	VetoRewardFloor float64 // hard veto below this last-cycle reward
	OptOutKey       string  // boolean state field that opts a user out
}

// DefaultGateConfig returns sensible defaults.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		VetoRewardFloor: -1.0,
		OptOutKey:       "do_not_monetize",
	}
}

// #endregion

// #region gate

// Gate is a threshold risk assessor over candidate strategy state. It
// checks hard vetoes first, then scores soft signals for ordering. It
// never fails; a state it cannot read scores zero.
type Gate struct {
	config GateConfig
}

// NewGate creates a gate with the given configuration.
func NewGate(config GateConfig) *Gate {
	return &Gate{config: config}
}

// Assess implements the orchestrator's RiskAssessor extension point.
func (g *Gate) Assess(_ context.Context, _ string, st map[string]any) (orchestrator.RiskAssessment, error) {
	// --- Hard veto pass ---

	// 1. Caller-supplied opt-out
	if optOut, ok := st[g.config.OptOutKey].(bool); ok && optOut {
		return orchestrator.RiskAssessment{Veto: true}, nil
	}

	// 2. Last cycle's reward below the floor
	if reward, ok := numeric(st[state.RewardKey]); ok && reward < g.config.VetoRewardFloor {
		return orchestrator.RiskAssessment{Veto: true}, nil
	}

	// --- Soft scoring ---
	return orchestrator.RiskAssessment{Score: softScore(st)}, nil
}

// #endregion

// #region scoring

// softScore produces a 0-1 composite: half for a proven strategy (one
// that has executed before), half scaled by its last reward.
func softScore(st map[string]any) float64 {
	var score float64

	if _, ok := st[state.LastActionKey]; ok {
		score += 0.5
	}

	if reward, ok := numeric(st[state.RewardKey]); ok && reward > 0 {
		component := reward / 5.0
		if component > 0.5 {
			component = 0.5
		}
		score += component
	}

	return score
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// #endregion
