package logging

import "time"

// #region entry

// InteractionEntry is one row of the interaction_log audit trail: what
// the engine decided for an interaction and why.
type InteractionEntry struct {
	InteractionID string
	Context       string
	Decision      string // "success" | "degraded" | "no_strategy"
	OutcomeJSON   string
	UserDataJSON  string
	Reason        string
	CreatedAt     time.Time
}

// #endregion
