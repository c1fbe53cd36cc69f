package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := InitSchema(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestLogInteraction(t *testing.T) {
	db := newTestDB(t)

	err := LogInteraction(db, InteractionEntry{
		InteractionID: "i1",
		Context:       "default",
		Decision:      "success",
		OutcomeJSON:   `{"action":"upsell","reward":2.5}`,
		UserDataJSON:  `{"user":"u1"}`,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}

	var decision, context string
	var reason sql.NullString
	err = db.QueryRow(
		`SELECT decision, context, reason FROM interaction_log WHERE interaction_id = ?`, "i1",
	).Scan(&decision, &context, &reason)
	if err != nil {
		t.Fatal(err)
	}
	if decision != "success" || context != "default" {
		t.Errorf("row = %s/%s", decision, context)
	}
	if reason.Valid {
		t.Error("empty reason should be stored as NULL")
	}
}

func TestLogInteraction_StampsMissingTimestamp(t *testing.T) {
	db := newTestDB(t)

	err := LogInteraction(db, InteractionEntry{
		InteractionID: "i2",
		Context:       "default",
		Decision:      "degraded",
		Reason:        "all candidates degraded",
	})
	if err != nil {
		t.Fatal(err)
	}

	var createdAt string
	if err := db.QueryRow(`SELECT created_at FROM interaction_log WHERE interaction_id = ?`, "i2").Scan(&createdAt); err != nil {
		t.Fatal(err)
	}
	if _, err := time.Parse(time.RFC3339Nano, createdAt); err != nil {
		t.Errorf("bad created_at %q: %v", createdAt, err)
	}
}
