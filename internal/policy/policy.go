package policy

// #region imports
import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/state"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #endregion

// #region actions

const (
	ActionUpsell     strategy.ActionID = "upsell"
	ActionCrossSell  strategy.ActionID = "cross_sell"
	ActionRetention  strategy.ActionID = "retention_discount"
	ActionSupport    strategy.ActionID = "support_outreach"
	ActionEngagement strategy.ActionID = "engagement_nudge"
)

// #endregion

// #region default-mapping

type intensityBand string

const (
	bandLow  intensityBand = "low"  // intensity < 0.5
	bandHigh intensityBand = "high" // intensity >= 0.5
)

// defaultMapping maps (sentiment, intensity band) → default action.
var defaultMapping = map[string]map[intensityBand]strategy.ActionID{
	"positive": {
		bandLow:  ActionCrossSell,
		bandHigh: ActionUpsell,
	},
	"negative": {
		bandLow:  ActionRetention,
		bandHigh: ActionSupport,
	},
	"neutral": {
		bandLow:  ActionEngagement,
		bandHigh: ActionEngagement,
	},
}

// #endregion

// #region reward-table

// baseReward holds the static reward estimate per action.
var baseReward = map[strategy.ActionID]float64{
	ActionUpsell:           3.0,
	ActionCrossSell:        2.0,
	ActionRetention:        1.5,
	ActionEngagement:       1.0,
	ActionSupport:          0.5,
	strategy.ActionMinimal: 0.2,
}

// repeatPenalty dampens the estimate when the state shows the same
// action was just taken.
const repeatPenalty = 0.5

// #endregion

// #region stats-interface

// ActionStats exposes learned action performance. Implemented by the
// orchestrator's outcome memory; nil = no learning.
type ActionStats interface {
	BestAction(context string) (strategy.ActionID, float64, error)
}

// #endregion

// #region local-policy

// LocalPolicy chooses actions from the default mapping table, preferring
// the learned best action for the state's context once enough outcomes
// have accumulated. No model call; it backs replay runs and deployments
// without the model service.
type LocalPolicy struct {
	stats ActionStats
}

// NewLocalPolicy creates a policy with optional learned-stats backing.
func NewLocalPolicy(stats ActionStats) *LocalPolicy {
	return &LocalPolicy{stats: stats}
}

// #endregion

// #region choose-action

// ChooseAction returns the learned best action for the state's context
// when available, otherwise the mapping-table default for the emotional
// context.
func (p *LocalPolicy) ChooseAction(_ context.Context, st map[string]any, emotion strategy.EmotionSignal) (strategy.ActionID, error) {
	if p.stats != nil {
		if c, ok := st[state.ContextKey].(string); ok {
			learned, _, err := p.stats.BestAction(c)
			if err == nil && learned != "" {
				if _, known := baseReward[learned]; known {
					return learned, nil
				}
			}
		}
	}

	band := bandLow
	if emotion.Intensity >= 0.5 {
		band = bandHigh
	}

	byBand, ok := defaultMapping[emotion.Sentiment]
	if !ok {
		return "", fmt.Errorf("unknown sentiment %q", emotion.Sentiment)
	}
	return byBand[band], nil
}

// #endregion

// #region estimate-reward

// EstimateReward returns the static estimate for action, dampened when
// the state shows the same action was taken last cycle. Unknown actions
// are an error.
func (p *LocalPolicy) EstimateReward(_ context.Context, action strategy.ActionID, st map[string]any) (float64, error) {
	reward, ok := baseReward[action]
	if !ok {
		return 0, fmt.Errorf("unknown action %q", action)
	}
	if last, ok := st[state.LastActionKey].(string); ok && last == string(action) {
		reward *= repeatPenalty
	}
	return reward, nil
}

// #endregion
