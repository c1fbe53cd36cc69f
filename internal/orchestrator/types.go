package orchestrator

// #region imports
import (
	"context"
	"time"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #endregion

// #region contexts

// FallbackContext is the reserved registry key for the default strategy
// used when no context-matching strategy exists.
const FallbackContext = "fallback"

// DefaultContext is the orchestrator's context until explicitly changed.
const DefaultContext = "default"

// #endregion

// #region result

// Result is the explicit outcome variant of one strategy execution:
// either a success carrying the outcome, or a degraded result carrying
// the reason the failure was absorbed.
type Result struct {
	Outcome  strategy.Outcome
	Degraded bool
	Reason   string // "" on success
}

// #endregion

// #region outcome-record

// OutcomeRecord is a single row for outcome_log.
type OutcomeRecord struct {
	InteractionID string
	Context       string
	Action        strategy.ActionID
	Reward        float64
	Degraded      bool
	StateVersion  string
	UserDataJSON  string
	CreatedAt     time.Time
}

// #endregion

// #region sink-interface

// OutcomeSink receives every executed outcome. Sink failures are logged
// and swallowed; they never affect the caller's returned Outcome.
type OutcomeSink interface {
	Record(rec OutcomeRecord) error
}

// #endregion

// #region risk-interfaces

// RiskAssessment scores one candidate strategy for the current context.
type RiskAssessment struct {
	Score float64
	Veto  bool
}

// RiskAssessor is the candidate filtering/ordering extension point. A
// nil assessor leaves selection in pure registration order. Assessment
// failures are treated as pass-through, never as vetoes.
type RiskAssessor interface {
	Assess(ctx context.Context, currentContext string, st map[string]any) (RiskAssessment, error)
}

// #endregion
