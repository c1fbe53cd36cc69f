package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/state"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

type stubStats struct {
	action strategy.ActionID
	err    error
}

func (s *stubStats) BestAction(string) (strategy.ActionID, float64, error) {
	return s.action, 1.0, s.err
}

func TestChooseAction_DefaultMapping(t *testing.T) {
	p := NewLocalPolicy(nil) // no learning

	tests := []struct {
		name    string
		emotion strategy.EmotionSignal
		want    strategy.ActionID
	}{
		{"positive-low", strategy.EmotionSignal{Sentiment: "positive", Intensity: 0.2}, ActionCrossSell},
		{"positive-high", strategy.EmotionSignal{Sentiment: "positive", Intensity: 0.8}, ActionUpsell},
		{"negative-low", strategy.EmotionSignal{Sentiment: "negative", Intensity: 0.3}, ActionRetention},
		{"negative-high", strategy.EmotionSignal{Sentiment: "negative", Intensity: 0.9}, ActionSupport},
		{"neutral", strategy.EmotionSignal{Sentiment: "neutral", Intensity: 0}, ActionEngagement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ChooseAction(context.Background(), map[string]any{state.ContextKey: "default"}, tt.emotion)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChooseAction_UnknownSentiment(t *testing.T) {
	p := NewLocalPolicy(nil)
	if _, err := p.ChooseAction(context.Background(), nil, strategy.EmotionSignal{Sentiment: "ecstatic"}); err == nil {
		t.Error("expected error for unknown sentiment")
	}
}

func TestChooseAction_LearnedOverride(t *testing.T) {
	p := NewLocalPolicy(&stubStats{action: ActionRetention})

	got, err := p.ChooseAction(context.Background(),
		map[string]any{state.ContextKey: "default"},
		strategy.EmotionSignal{Sentiment: "positive", Intensity: 0.9},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got != ActionRetention {
		t.Errorf("got %q, want learned %q", got, ActionRetention)
	}
}

func TestChooseAction_LearnedFailureFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		stats ActionStats
	}{
		{"stats-error", &stubStats{err: errors.New("db closed")}},
		{"no-samples", &stubStats{action: ""}},
		{"unknown-learned-action", &stubStats{action: "deprecated_action"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLocalPolicy(tt.stats)
			got, err := p.ChooseAction(context.Background(),
				map[string]any{state.ContextKey: "default"},
				strategy.EmotionSignal{Sentiment: "positive", Intensity: 0.9},
			)
			if err != nil {
				t.Fatal(err)
			}
			if got != ActionUpsell {
				t.Errorf("got %q, want mapping default %q", got, ActionUpsell)
			}
		})
	}
}

func TestEstimateReward(t *testing.T) {
	p := NewLocalPolicy(nil)

	reward, err := p.EstimateReward(context.Background(), ActionUpsell, map[string]any{})
	if err != nil {
		t.Fatal(err)
	}
	if reward != 3.0 {
		t.Errorf("reward = %v, want 3.0", reward)
	}
}

func TestEstimateReward_RepeatPenalty(t *testing.T) {
	p := NewLocalPolicy(nil)

	reward, err := p.EstimateReward(context.Background(), ActionUpsell,
		map[string]any{state.LastActionKey: "upsell"})
	if err != nil {
		t.Fatal(err)
	}
	if reward != 1.5 {
		t.Errorf("reward = %v, want 1.5 (dampened)", reward)
	}
}

func TestEstimateReward_UnknownAction(t *testing.T) {
	p := NewLocalPolicy(nil)
	if _, err := p.EstimateReward(context.Background(), "premium_takeover", nil); err == nil {
		t.Error("expected error for unknown action")
	}
}
