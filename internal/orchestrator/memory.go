package orchestrator

// #region imports
import (
	"database/sql"
	"math"
	"time"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #endregion

// #region schema

const outcomeLogSchema = `
CREATE TABLE IF NOT EXISTS outcome_log (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    interaction_id TEXT NOT NULL,
    context        TEXT NOT NULL,
    action         TEXT NOT NULL,
    reward         REAL NOT NULL,
    degraded       INTEGER NOT NULL DEFAULT 0,
    state_version  TEXT NOT NULL,
    user_data      TEXT,
    created_at     TEXT NOT NULL
);
`

const outcomeLogIndex = `
CREATE INDEX IF NOT EXISTS idx_outcome_log_lookup
ON outcome_log(context, action);
`

// #endregion

// #region memory-struct

// OutcomeMemory persists executed outcomes in SQLite and queries
// decay-weighted action performance. It is the engine's durable
// OutcomeSink; the in-memory reward history stays with each strategy.
type OutcomeMemory struct {
	db *sql.DB
}

// NewOutcomeMemory initializes the outcome_log table and returns an
// OutcomeMemory.
func NewOutcomeMemory(db *sql.DB) (*OutcomeMemory, error) {
	if _, err := db.Exec(outcomeLogSchema); err != nil {
		return nil, err
	}
	if _, err := db.Exec(outcomeLogIndex); err != nil {
		return nil, err
	}
	return &OutcomeMemory{db: db}, nil
}

// #endregion

// #region record

// Record persists a single outcome row. Implements OutcomeSink.
func (m *OutcomeMemory) Record(rec OutcomeRecord) error {
	degraded := 0
	if rec.Degraded {
		degraded = 1
	}
	_, err := m.db.Exec(`
		INSERT INTO outcome_log
		(interaction_id, context, action, reward, degraded, state_version, user_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.InteractionID,
		rec.Context,
		string(rec.Action),
		rec.Reward,
		degraded,
		rec.StateVersion,
		nullIfEmpty(rec.UserDataJSON),
		rec.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// #endregion

// #region best-action

// BestAction returns the action with the highest decay-weighted reward
// for the given context. Returns ("", 0, nil) if no action has at least
// 3 non-degraded samples.
func (m *OutcomeMemory) BestAction(context string) (strategy.ActionID, float64, error) {
	rows, err := m.db.Query(`
		SELECT action, reward, created_at
		FROM outcome_log
		WHERE context = ? AND degraded = 0`,
		context,
	)
	if err != nil {
		return "", 0, err
	}
	defer rows.Close()

	type actionAccum struct {
		weightedSum float64
		totalWeight float64
		count       int
	}

	now := time.Now()
	halfLife := 7.0 * 24.0 // 7 days in hours
	accum := make(map[strategy.ActionID]*actionAccum)

	for rows.Next() {
		var action string
		var reward float64
		var createdAtStr string
		if err := rows.Scan(&action, &reward, &createdAtStr); err != nil {
			return "", 0, err
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			continue
		}
		ageHours := now.Sub(createdAt).Hours()
		weight := math.Exp(-ageHours / halfLife)

		id := strategy.ActionID(action)
		if _, ok := accum[id]; !ok {
			accum[id] = &actionAccum{}
		}
		accum[id].weightedSum += reward * weight
		accum[id].totalWeight += weight
		accum[id].count++
	}
	if err := rows.Err(); err != nil {
		return "", 0, err
	}

	var bestID strategy.ActionID
	bestScore := math.Inf(-1)

	for id, a := range accum {
		if a.count < 3 {
			continue
		}
		avg := a.weightedSum / a.totalWeight
		if avg > bestScore {
			bestScore = avg
			bestID = id
		}
	}

	if bestID == "" {
		return "", 0, nil
	}
	return bestID, bestScore, nil
}

// #endregion

// #region recent

// RecentOutcomes returns the most recent outcome rows, newest first.
func (m *OutcomeMemory) RecentOutcomes(limit int) ([]OutcomeRecord, error) {
	rows, err := m.db.Query(`
		SELECT interaction_id, context, action, reward, degraded, state_version, user_data, created_at
		FROM outcome_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		var action string
		var degraded int
		var userData sql.NullString
		var createdAtStr string
		if err := rows.Scan(&rec.InteractionID, &rec.Context, &action, &rec.Reward,
			&degraded, &rec.StateVersion, &userData, &createdAtStr); err != nil {
			return nil, err
		}
		rec.Action = strategy.ActionID(action)
		rec.Degraded = degraded != 0
		if userData.Valid {
			rec.UserDataJSON = userData.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		records = append(records, rec)
	}
	return records, rows.Err()
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
