package state

import (
	"testing"
	"time"
)

func TestNew_CopiesInput(t *testing.T) {
	src := map[string]any{ContextKey: "default", "plan": "pro"}
	snap := New(src)

	src["plan"] = "free"
	if v, _ := snap.Get("plan"); v != "pro" {
		t.Errorf("snapshot shares caller's map: plan = %v", v)
	}
	if snap.VersionID() == "" {
		t.Error("expected a version id")
	}
	if snap.ParentID() != "" {
		t.Errorf("initial version should have no parent, got %q", snap.ParentID())
	}
}

func TestWith_NewVersionLeavesOldIntact(t *testing.T) {
	old := New(map[string]any{ContextKey: "default"})

	next, err := old.With(map[string]any{
		LastActionKey: "upsell",
		TimestampKey:  time.Now().UTC().Format(time.RFC3339),
		RewardKey:     1.5,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := old.Get(LastActionKey); ok {
		t.Error("merge mutated the prior version")
	}
	if v, _ := next.Get(LastActionKey); v != "upsell" {
		t.Errorf("last_action = %v, want upsell", v)
	}
	if next.ParentID() != old.VersionID() {
		t.Errorf("parent = %q, want %q", next.ParentID(), old.VersionID())
	}
}

func TestWith_RejectsContextOverwrite(t *testing.T) {
	snap := New(map[string]any{ContextKey: "default"})
	if _, err := snap.With(map[string]any{ContextKey: "premium"}); err == nil {
		t.Error("expected error overwriting context")
	}

	// A state without a context yet may receive one.
	blank := New(nil)
	next, err := blank.With(map[string]any{ContextKey: "default"})
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := next.Context(); !ok || c != "default" {
		t.Errorf("context = %q (%v)", c, ok)
	}
}

func TestWith_RejectsUnserializableValue(t *testing.T) {
	snap := New(map[string]any{ContextKey: "default"})
	if _, err := snap.With(map[string]any{"bad": make(chan int)}); err == nil {
		t.Error("expected error for unserializable value")
	}
}

func TestWithout_PreservesContext(t *testing.T) {
	snap := New(map[string]any{ContextKey: "default", "plan": "pro"})
	next, err := snap.With(map[string]any{LastActionKey: "upsell", RewardKey: 2.0})
	if err != nil {
		t.Fatal(err)
	}

	pruned := next.Without(LastActionKey, RewardKey, ContextKey)

	if _, ok := pruned.Get(LastActionKey); ok {
		t.Error("last_action survived prune")
	}
	if _, ok := pruned.Get(RewardKey); ok {
		t.Error("reward survived prune")
	}
	if c, ok := pruned.Context(); !ok || c != "default" {
		t.Errorf("context lost in prune: %q (%v)", c, ok)
	}
	if v, _ := pruned.Get("plan"); v != "pro" {
		t.Errorf("caller-supplied field lost in prune: %v", v)
	}
}

func TestContext_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
	}{
		{"missing", map[string]any{"plan": "pro"}},
		{"wrong-type", map[string]any{ContextKey: 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := New(tt.fields)
			if _, ok := snap.Context(); ok {
				t.Error("expected malformed context to report ok=false")
			}
		})
	}
}

func TestWithContext_Reassigns(t *testing.T) {
	snap := New(map[string]any{ContextKey: "default", "plan": "pro"})
	moved := snap.WithContext("premium")

	if c, _ := moved.Context(); c != "premium" {
		t.Errorf("context = %q, want premium", c)
	}
	if c, _ := snap.Context(); c != "default" {
		t.Errorf("reassignment mutated the old version: %q", c)
	}
	if v, _ := moved.Get("plan"); v != "pro" {
		t.Errorf("plan lost in reassignment: %v", v)
	}
}
