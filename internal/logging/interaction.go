package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema

const interactionLogSchema = `
CREATE TABLE IF NOT EXISTS interaction_log (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    interaction_id TEXT NOT NULL,
    context        TEXT NOT NULL,
    decision       TEXT NOT NULL,
    outcome_json   TEXT,
    user_data      TEXT,
    reason         TEXT,
    created_at     TEXT NOT NULL
);
`

// InitSchema creates the interaction_log table.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(interactionLogSchema); err != nil {
		return fmt.Errorf("init interaction_log: %w", err)
	}
	return nil
}

// #endregion

// #region log-interaction

// LogInteraction writes an audit entry to the interaction_log table.
func LogInteraction(db *sql.DB, entry InteractionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO interaction_log (interaction_id, context, decision, outcome_json, user_data, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.InteractionID,
		entry.Context,
		entry.Decision,
		nullIfEmpty(entry.OutcomeJSON),
		nullIfEmpty(entry.UserDataJSON),
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log interaction: %w", err)
	}
	return nil
}

// #endregion

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion
