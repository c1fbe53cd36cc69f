package replay

// #region imports
import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/emotion"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/orchestrator"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/policy"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/state"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #endregion

// #region types

// Result captures the outcome of replaying one interaction.
type Result struct {
	InteractionID string
	Outcome       strategy.Outcome
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total       int
	Successes   int
	Degraded    int
	TotalReward float64
	ByAction    map[strategy.ActionID]int
}

// #endregion

// #region run

// Run replays a fixture through a fresh orchestrator wired with the
// local emotion and policy providers. sink may be nil. Operates
// entirely in-memory apart from the sink.
func Run(ctx context.Context, f Fixture, sink orchestrator.OutcomeSink) ([]Result, error) {
	orch := orchestrator.New(sink, nil)

	analyzer := emotion.NewAnalyzer()
	pol := policy.NewLocalPolicy(nil)

	for _, spec := range f.Registry {
		seed := make(map[string]any, len(spec.Seed)+1)
		for k, v := range spec.Seed {
			seed[k] = v
		}
		seed[state.ContextKey] = spec.Context

		s := strategy.New(state.New(seed), analyzer, pol)
		s.SetStrict(spec.Strict)
		orch.Register(spec.Context, s)
	}

	results := make([]Result, 0, len(f.Interactions))
	for _, inter := range f.Interactions {
		if inter.Context != "" {
			orch.SetContext(inter.Context)
		}
		out, err := orch.ProcessInteraction(ctx, inter.UserData)
		if err != nil {
			return nil, fmt.Errorf("interaction %s: %w", inter.InteractionID, err)
		}
		results = append(results, Result{
			InteractionID: inter.InteractionID,
			Outcome:       out,
		})
	}
	return results, nil
}

// #endregion

// #region summarize

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{
		Total:    len(results),
		ByAction: make(map[strategy.ActionID]int),
	}
	for _, r := range results {
		if r.Outcome.Degraded() {
			s.Degraded++
		} else {
			s.Successes++
		}
		s.TotalReward += r.Outcome.Reward
		s.ByAction[r.Outcome.Action]++
	}
	return s
}

// #endregion

// #region verify

// Verify compares results against the fixture's expected actions and
// returns one message per mismatch. An empty return means the run
// matched.
func Verify(f Fixture, results []Result) []string {
	byID := make(map[string]strategy.Outcome, len(results))
	for _, r := range results {
		byID[r.InteractionID] = r.Outcome
	}

	var mismatches []string
	for _, exp := range f.Expected {
		out, ok := byID[exp.InteractionID]
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("%s: no result", exp.InteractionID))
			continue
		}
		if string(out.Action) != exp.Action {
			mismatches = append(mismatches,
				fmt.Sprintf("%s: action %q, expected %q", exp.InteractionID, out.Action, exp.Action))
		}
	}
	return mismatches
}

// #endregion
