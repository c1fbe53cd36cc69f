package strategy

// #region imports
import (
	"context"
	"time"
)

// #endregion

// #region actions

// ActionID identifies a monetization action.
type ActionID string

const (
	// ActionNone is the degraded sentinel: a handled failure, not an error.
	ActionNone ActionID = "none"

	// ActionMinimal is the safe default when action selection fails.
	ActionMinimal ActionID = "minimal_intervention"
)

// #endregion

// #region emotion-signal

// EmotionSignal is the sentiment/intensity estimate inferred from an
// interaction record.
type EmotionSignal struct {
	Sentiment string
	Intensity float64
}

// NeutralSignal is the default returned when emotion inference fails.
func NeutralSignal() EmotionSignal {
	return EmotionSignal{Sentiment: "neutral", Intensity: 0}
}

// #endregion

// #region outcome

// Outcome is the immutable result of one execution cycle, success or
// degraded.
type Outcome struct {
	Action    ActionID `json:"action"`
	Reward    float64  `json:"reward"`
	Timestamp string   `json:"timestamp"` // RFC 3339
}

// Degraded reports whether this outcome is the handled-failure sentinel.
func (o Outcome) Degraded() bool {
	return o.Action == ActionNone
}

// Valid reports whether all three required fields are populated.
func (o Outcome) Valid() bool {
	return o.Action != "" && o.Timestamp != ""
}

// DegradedOutcome returns the zero-result sentinel stamped with the
// current time.
func DegradedOutcome() Outcome {
	return Outcome{
		Action:    ActionNone,
		Reward:    0,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// #endregion

// #region provider-interfaces

// EmotionAnalyzer maps an interaction record to a sentiment/intensity
// estimate. Implementations may fail with any error; the strategy
// absorbs failures unless strict mode is on.
type EmotionAnalyzer interface {
	Analyze(ctx context.Context, record map[string]any) (EmotionSignal, error)
}

// PolicyProvider chooses actions and estimates rewards. Implementations
// may fail with any error; the strategy absorbs failures unless strict
// mode is on.
type PolicyProvider interface {
	ChooseAction(ctx context.Context, st map[string]any, emotion EmotionSignal) (ActionID, error)
	EstimateReward(ctx context.Context, action ActionID, st map[string]any) (float64, error)
}

// #endregion
