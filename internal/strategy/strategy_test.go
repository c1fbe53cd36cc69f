package strategy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/state"
)

// #region stubs

type stubAnalyzer struct {
	signal EmotionSignal
	err    error
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ map[string]any) (EmotionSignal, error) {
	return a.signal, a.err
}

type stubPolicy struct {
	action    ActionID
	actionErr error
	reward    float64
	rewardErr error
}

func (p *stubPolicy) ChooseAction(_ context.Context, _ map[string]any, _ EmotionSignal) (ActionID, error) {
	return p.action, p.actionErr
}

func (p *stubPolicy) EstimateReward(_ context.Context, _ ActionID, _ map[string]any) (float64, error) {
	return p.reward, p.rewardErr
}

func newTestStrategy(t *testing.T, emotion EmotionAnalyzer, policy PolicyProvider) *Strategy {
	t.Helper()
	initial := state.New(map[string]any{state.ContextKey: "default"})
	return New(initial, emotion, policy)
}

// #endregion

func TestInferEmotionalContext_NeutralOnFailure(t *testing.T) {
	s := newTestStrategy(t,
		&stubAnalyzer{err: errors.New("model offline")},
		&stubPolicy{},
	)

	sig, err := s.InferEmotionalContext(context.Background(), map[string]any{"msg": "hi"})
	if err != nil {
		t.Fatalf("non-strict inference returned error: %v", err)
	}
	if sig != NeutralSignal() {
		t.Errorf("signal = %+v, want neutral default", sig)
	}
}

func TestInferEmotionalContext_StrictPropagates(t *testing.T) {
	s := newTestStrategy(t,
		&stubAnalyzer{err: errors.New("model offline")},
		&stubPolicy{},
	)
	s.SetStrict(true)

	if _, err := s.InferEmotionalContext(context.Background(), nil); err == nil {
		t.Error("strict mode should propagate analyzer failure")
	}
}

func TestSelectNextAction_SafeDefaultOnPolicyFailure(t *testing.T) {
	s := newTestStrategy(t,
		&stubAnalyzer{signal: EmotionSignal{Sentiment: "positive", Intensity: 0.7}},
		&stubPolicy{actionErr: errors.New("policy down")},
	)

	action, err := s.SelectNextAction(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if action != ActionMinimal {
		t.Errorf("action = %q, want %q", action, ActionMinimal)
	}
}

func TestExecute_Success(t *testing.T) {
	s := newTestStrategy(t,
		&stubAnalyzer{signal: EmotionSignal{Sentiment: "positive", Intensity: 0.9}},
		&stubPolicy{action: "upsell", reward: 2.5},
	)

	out, err := s.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out.Degraded() {
		t.Fatalf("unexpected degraded outcome: %+v", out)
	}
	if out.Action != "upsell" || out.Reward != 2.5 {
		t.Errorf("outcome = %+v", out)
	}
	if _, perr := time.Parse(time.RFC3339Nano, out.Timestamp); perr != nil {
		t.Errorf("bad timestamp %q: %v", out.Timestamp, perr)
	}

	// State carries the new triple and history the reward.
	snap := s.State()
	if v, _ := snap.Get(state.LastActionKey); v != "upsell" {
		t.Errorf("last_action = %v, want upsell", v)
	}
	if v, _ := snap.Get(state.RewardKey); v != 2.5 {
		t.Errorf("reward = %v, want 2.5", v)
	}
	hist := s.RewardHistory()
	if len(hist) != 1 || hist[0] != 2.5 {
		t.Errorf("history = %v", hist)
	}
}

func TestExecute_DegradedLeavesStateAndHistoryUntouched(t *testing.T) {
	s := newTestStrategy(t,
		&stubAnalyzer{signal: NeutralSignal()},
		&stubPolicy{action: "upsell", rewardErr: errors.New("reward model down")},
	)
	before := s.State()

	out, err := s.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !out.Degraded() {
		t.Fatalf("expected degraded outcome, got %+v", out)
	}
	if out.Reward != 0 {
		t.Errorf("degraded reward = %v, want 0", out.Reward)
	}

	after := s.State()
	if after.VersionID() != before.VersionID() {
		t.Error("degraded execute published a new state version")
	}
	if len(s.RewardHistory()) != 0 {
		t.Errorf("history grew on degraded execute: %v", s.RewardHistory())
	}
}

func TestExecute_ContextImmutableUnderRepeatedFailure(t *testing.T) {
	s := newTestStrategy(t,
		&stubAnalyzer{signal: NeutralSignal()},
		&stubPolicy{actionErr: errors.New("down"), rewardErr: errors.New("down")},
	)

	for i := 0; i < 5; i++ {
		if _, err := s.Execute(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if c, ok := s.Context(); !ok || c != "default" {
		t.Errorf("context = %q (%v) after repeated failures", c, ok)
	}
}

func TestExecute_StrictPropagates(t *testing.T) {
	s := newTestStrategy(t,
		&stubAnalyzer{signal: NeutralSignal()},
		&stubPolicy{action: "upsell", rewardErr: errors.New("reward model down")},
	)
	s.SetStrict(true)

	if _, err := s.Execute(context.Background()); err == nil {
		t.Error("strict execute should propagate")
	}
	if len(s.RewardHistory()) != 0 {
		t.Error("history grew on failed strict execute")
	}
}

func TestRollback_PrunesExecutionKeysOnly(t *testing.T) {
	initial := state.New(map[string]any{state.ContextKey: "default", "plan": "pro"})
	s := New(initial,
		&stubAnalyzer{signal: NeutralSignal()},
		&stubPolicy{action: "upsell", reward: 1.0},
	)

	if _, err := s.Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	s.Rollback()

	snap := s.State()
	if _, ok := snap.Get(state.LastActionKey); ok {
		t.Error("last_action survived rollback")
	}
	if _, ok := snap.Get(state.RewardKey); ok {
		t.Error("reward survived rollback")
	}
	if c, ok := snap.Context(); !ok || c != "default" {
		t.Errorf("context lost in rollback: %q (%v)", c, ok)
	}
	if v, _ := snap.Get("plan"); v != "pro" {
		t.Errorf("plan lost in rollback: %v", v)
	}
}
