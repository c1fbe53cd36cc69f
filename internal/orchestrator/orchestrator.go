package orchestrator

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #endregion

// #region orchestrator-struct

// Orchestrator routes interactions to registered strategies, enforces
// ordered fallback across candidates, and keeps one strategy's failure
// from affecting its siblings.
type Orchestrator struct {
	mu       sync.Mutex
	registry map[string]*strategy.Strategy
	order    []string // registration order, stable across replacement
	current  string

	sink    OutcomeSink  // nil = no outcome logging
	risk    RiskAssessor // nil = pure registration order
	enabled bool
	strict  bool
}

// #endregion

// #region constructor

// New creates an orchestrator. sink and risk may be nil.
// Kill switch: set ENGINE_ENABLED=false to short-circuit every
// interaction to the degraded outcome.
func New(sink OutcomeSink, risk RiskAssessor) *Orchestrator {
	enabled := true
	if v := os.Getenv("ENGINE_ENABLED"); v == "false" {
		enabled = false
	}

	return &Orchestrator{
		registry: make(map[string]*strategy.Strategy),
		current:  DefaultContext,
		sink:     sink,
		risk:     risk,
		enabled:  enabled,
	}
}

// Enabled returns whether the orchestrator is active.
func (o *Orchestrator) Enabled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.enabled
}

// SetStrict toggles strict mode: strategy failures propagate to the
// caller instead of degrading.
func (o *Orchestrator) SetStrict(v bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.strict = v
}

// #endregion

// #region registry

// Register inserts or replaces the registry entry for context. A
// replaced entry keeps its original position in the candidate order.
// Strategies live for the orchestrator's lifetime; there is no
// eviction.
func (o *Orchestrator) Register(context string, s *strategy.Strategy) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, exists := o.registry[context]; !exists {
		o.order = append(o.order, context)
	}
	o.registry[context] = s
}

// SetContext switches the orchestrator's current context. This is a
// configuration operation, not part of interaction processing.
func (o *Orchestrator) SetContext(context string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.current = context
}

// CurrentContext returns the context interactions are resolved against.
func (o *Orchestrator) CurrentContext() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// #endregion

// #region select-applicable

// SelectApplicable returns the ordered candidate list for the current
// context: every strategy whose state context equals it, in
// registration order. A malformed state is logged and skipped, never
// raised. With zero applicable strategies the result is the fallback
// entry alone, or empty when none is registered. A configured risk
// assessor may veto candidates and re-rank the rest by descending
// score; the sort is stable, so ties keep registration order.
func (o *Orchestrator) SelectApplicable(ctx context.Context) []*strategy.Strategy {
	o.mu.Lock()
	current := o.current
	order := make([]string, len(o.order))
	copy(order, o.order)
	registry := make(map[string]*strategy.Strategy, len(o.registry))
	for k, v := range o.registry {
		registry[k] = v
	}
	o.mu.Unlock()

	var candidates []*strategy.Strategy
	for _, key := range order {
		s := registry[key]
		c, ok := s.Context()
		if !ok {
			log.Printf("[ORCH] strategy %q has a malformed context field, skipping", key)
			continue
		}
		if c == current {
			candidates = append(candidates, s)
		}
	}

	if len(candidates) == 0 {
		log.Printf("[ORCH] no applicable strategies for context %q", current)
		fb, ok := registry[FallbackContext]
		if !ok {
			return nil
		}
		candidates = []*strategy.Strategy{fb}
	}

	if o.risk != nil {
		candidates = o.rankByRisk(ctx, current, candidates)
	}
	return candidates
}

// rankByRisk drops vetoed candidates and stable-sorts the rest by
// descending score. An assessment failure is a pass-through, scored
// zero.
func (o *Orchestrator) rankByRisk(ctx context.Context, current string, candidates []*strategy.Strategy) []*strategy.Strategy {
	type ranked struct {
		s     *strategy.Strategy
		score float64
	}
	kept := make([]ranked, 0, len(candidates))
	for _, s := range candidates {
		assessment, err := o.risk.Assess(ctx, current, s.State().Fields())
		if err != nil {
			log.Printf("[ORCH] risk assessment failed, passing through: %v", err)
			kept = append(kept, ranked{s: s})
			continue
		}
		if assessment.Veto {
			continue
		}
		kept = append(kept, ranked{s: s, score: assessment.Score})
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })

	out := make([]*strategy.Strategy, len(kept))
	for i, r := range kept {
		out[i] = r.s
	}
	return out
}

// #endregion

// #region execute-strategy

// ExecuteStrategy runs one strategy's cycle, validates and records the
// outcome, and rolls the strategy back on failure. The returned Result
// is the explicit success/degraded variant; err is non-nil only in
// strict mode.
func (o *Orchestrator) ExecuteStrategy(ctx context.Context, s *strategy.Strategy) (Result, error) {
	return o.execute(ctx, uuid.New().String(), s, "")
}

func (o *Orchestrator) execute(ctx context.Context, interactionID string, s *strategy.Strategy, userDataJSON string) (Result, error) {
	out, err := s.Execute(ctx)
	if err != nil {
		// Strict-mode strategy raised. Roll back before deciding
		// whether to propagate; rollback itself never raises.
		s.Rollback()
		if o.isStrict() {
			return Result{}, fmt.Errorf("execute strategy: %w", err)
		}
		log.Printf("[ORCH] strategy execution failed, rolled back: %v", err)
		return Result{
			Outcome:  strategy.DegradedOutcome(),
			Degraded: true,
			Reason:   err.Error(),
		}, nil
	}

	if !out.Valid() {
		s.Rollback()
		log.Printf("[ORCH] strategy returned an incomplete outcome, rolled back: %+v", out)
		return Result{
			Outcome:  strategy.DegradedOutcome(),
			Degraded: true,
			Reason:   "incomplete outcome",
		}, nil
	}

	o.record(interactionID, s, out, userDataJSON)

	if out.Degraded() {
		return Result{Outcome: out, Degraded: true, Reason: "strategy degraded"}, nil
	}
	return Result{Outcome: out}, nil
}

// record sends the outcome to the sink. Sink failures never reach the
// caller.
func (o *Orchestrator) record(interactionID string, s *strategy.Strategy, out strategy.Outcome, userDataJSON string) {
	if o.sink == nil {
		return
	}

	snap := s.State()
	strategyContext, _ := snap.Context()
	rec := OutcomeRecord{
		InteractionID: interactionID,
		Context:       strategyContext,
		Action:        out.Action,
		Reward:        out.Reward,
		Degraded:      out.Degraded(),
		StateVersion:  snap.VersionID(),
		UserDataJSON:  userDataJSON,
		CreatedAt:     time.Now().UTC(),
	}
	if err := o.sink.Record(rec); err != nil {
		log.Printf("[ORCH] failed to record outcome: %v", err)
	}
}

// #endregion

// #region process-interaction

// ProcessInteraction is the public entry point: it resolves the current
// context, walks the applicable candidates in order, and returns the
// first non-degraded outcome. If every candidate degrades, the last
// degraded outcome is returned; with no candidates at all the degraded
// zero-outcome is returned directly. Callers always receive a
// well-formed Outcome — err is non-nil only in strict mode.
func (o *Orchestrator) ProcessInteraction(ctx context.Context, userData map[string]any) (strategy.Outcome, error) {
	if !o.Enabled() {
		return strategy.DegradedOutcome(), nil
	}

	interactionID := uuid.New().String()

	userDataJSON := ""
	if b, err := json.Marshal(userData); err == nil {
		userDataJSON = string(b)
	}

	candidates := o.SelectApplicable(ctx)
	if len(candidates) == 0 {
		// Normal terminal case, not an error.
		log.Printf("[ORCH] interaction %s: no candidates, returning zero outcome", interactionID)
		return strategy.DegradedOutcome(), nil
	}

	last := strategy.DegradedOutcome()
	for i, s := range candidates {
		res, err := o.execute(ctx, interactionID, s, userDataJSON)
		if err != nil {
			return strategy.Outcome{}, err
		}
		if !res.Degraded {
			log.Printf("[ORCH] interaction %s: candidate %d succeeded with action=%s reward=%.4f",
				interactionID, i, res.Outcome.Action, res.Outcome.Reward)
			return res.Outcome, nil
		}
		log.Printf("[ORCH] interaction %s: candidate %d degraded (%s), trying next",
			interactionID, i, res.Reason)
		last = res.Outcome
	}

	log.Printf("[ORCH] interaction %s: all %d candidates degraded", interactionID, len(candidates))
	return last, nil
}

// #endregion

// #region helpers

func (o *Orchestrator) isStrict() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.strict
}

// #endregion
