package strategy

// #region imports
import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/state"
)

// #endregion

// #region strategy-struct

// Strategy owns one context's decision state, reward history, and the
// action-selection/execution cycle. At most one Execute or Rollback
// mutates the state at a time; readers get immutable snapshots.
type Strategy struct {
	mu      sync.Mutex
	state   state.Snapshot
	history []float64

	emotion EmotionAnalyzer
	policy  PolicyProvider

	// strict disables error absorption so test harnesses can observe
	// provider failures directly. Default off: every public operation
	// is total.
	strict bool
}

// New creates a strategy owning the given initial state.
func New(initial state.Snapshot, emotion EmotionAnalyzer, policy PolicyProvider) *Strategy {
	return &Strategy{
		state:   initial,
		emotion: emotion,
		policy:  policy,
	}
}

// SetStrict toggles strict mode: when on, provider and merge failures
// propagate to the caller instead of degrading.
func (s *Strategy) SetStrict(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strict = v
}

// #endregion

// #region accessors

// State returns the current state snapshot. The snapshot is immutable;
// a concurrent Execute publishes a new version rather than mutating it.
func (s *Strategy) State() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Context returns the state's context field. ok is false for a
// malformed state.
func (s *Strategy) Context() (string, bool) {
	return s.State().Context()
}

// RewardHistory returns a copy of the append-only reward sequence, one
// entry per completed cycle. Degraded cycles append nothing. Used for
// offline analysis only, never consulted by the decision step.
func (s *Strategy) RewardHistory() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(s.history))
	copy(out, s.history)
	return out
}

// #endregion

// #region infer-emotion

// InferEmotionalContext delegates to the emotion analyzer. On analyzer
// failure it returns the neutral default signal so action selection
// never blocks on a broken emotion model; in strict mode the failure
// propagates instead.
func (s *Strategy) InferEmotionalContext(ctx context.Context, record map[string]any) (EmotionSignal, error) {
	sig, err := s.emotion.Analyze(ctx, record)
	if err != nil {
		if s.isStrict() {
			return EmotionSignal{}, fmt.Errorf("emotion analysis: %w", err)
		}
		log.Printf("[STRAT] emotion analysis failed, using neutral: %v", err)
		return NeutralSignal(), nil
	}
	return sig, nil
}

// #endregion

// #region select-action

// SelectNextAction computes the emotional context for the current state
// (the state doubles as the interaction record) and asks the policy for
// an action. Any failure in this path yields the safe default action;
// in strict mode it propagates.
func (s *Strategy) SelectNextAction(ctx context.Context) (ActionID, error) {
	fields := s.State().Fields()

	emotion, err := s.InferEmotionalContext(ctx, fields)
	if err != nil {
		// Strict mode only: non-strict inference never fails.
		return "", err
	}

	action, err := s.policy.ChooseAction(ctx, fields, emotion)
	if err != nil {
		if s.isStrict() {
			return "", fmt.Errorf("choose action: %w", err)
		}
		log.Printf("[STRAT] action selection failed, using %q: %v", ActionMinimal, err)
		return ActionMinimal, nil
	}
	return action, nil
}

// #endregion

// #region execute

// Execute runs one full cycle: select an action, estimate its reward,
// publish the new state version, and append to the reward history. On
// any failure the state and history are left untouched and the degraded
// outcome is returned; in strict mode the failure propagates instead.
func (s *Strategy) Execute(ctx context.Context) (Outcome, error) {
	action, err := s.SelectNextAction(ctx)
	if err != nil {
		return s.fail(fmt.Errorf("execute: %w", err))
	}

	reward, err := s.policy.EstimateReward(ctx, action, s.State().Fields())
	if err != nil {
		return s.fail(fmt.Errorf("estimate reward for %q: %w", action, err))
	}

	ts := time.Now().UTC().Format(time.RFC3339Nano)

	// State mutation happens only after both action and reward are
	// known, so a partial triple is never visible.
	if err := s.commit(action, reward, ts); err != nil {
		return s.fail(fmt.Errorf("state update: %w", err))
	}

	return Outcome{Action: action, Reward: reward, Timestamp: ts}, nil
}

// commit publishes the merged state version and appends the reward,
// linearized under the strategy's writer lock. A merge failure abandons
// the update: the old version stays current and history is unchanged.
func (s *Strategy) commit(action ActionID, reward float64, ts string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.With(map[string]any{
		state.LastActionKey: string(action),
		state.TimestampKey:  ts,
		state.RewardKey:     reward,
	})
	if err != nil {
		return err
	}

	s.state = next
	s.history = append(s.history, reward)
	return nil
}

// fail maps an execution failure to the degraded outcome, or propagates
// it in strict mode.
func (s *Strategy) fail(err error) (Outcome, error) {
	if s.isStrict() {
		return Outcome{}, err
	}
	log.Printf("[STRAT] %v", err)
	return DegradedOutcome(), nil
}

// #endregion

// #region rollback

// Rollback prunes the execution keys from the state, leaving context
// and caller-supplied fields intact. It never fails.
func (s *Strategy) Rollback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Without(state.LastActionKey, state.RewardKey)
}

// #endregion

// #region reassign

// Reassign moves the strategy to a new context. This is the only path
// that may change the context field.
func (s *Strategy) Reassign(context string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithContext(context)
}

// #endregion

// #region helpers

func (s *Strategy) isStrict() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strict
}

// #endregion
