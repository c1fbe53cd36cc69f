package state

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// #region keys

// Reserved field names. ContextKey is set once at registration time and
// never altered by execution or rollback; the mutation keys are the only
// fields an execution cycle writes.
const (
	ContextKey    = "context"
	LastActionKey = "last_action"
	TimestampKey  = "timestamp"
	RewardKey     = "reward"
)

// #endregion

// #region snapshot

// Snapshot is one immutable version of a strategy's state. Mutations go
// through With/Without, which return a new version; readers holding an
// older Snapshot keep a consistent view.
type Snapshot struct {
	versionID string
	parentID  string
	fields    map[string]any
}

// New creates an initial version from the given fields. The input map is
// copied, not retained.
func New(fields map[string]any) Snapshot {
	cp := make(map[string]any, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Snapshot{
		versionID: uuid.New().String(),
		fields:    cp,
	}
}

// #endregion

// #region accessors

// VersionID identifies this state version.
func (s Snapshot) VersionID() string { return s.versionID }

// ParentID identifies the version this one was derived from, or "" for
// an initial version.
func (s Snapshot) ParentID() string { return s.parentID }

// Get returns the value for key.
func (s Snapshot) Get(key string) (any, bool) {
	v, ok := s.fields[key]
	return v, ok
}

// Context returns the state's context field. ok is false when the field
// is missing or not a string (a malformed state).
func (s Snapshot) Context() (string, bool) {
	v, ok := s.fields[ContextKey]
	if !ok {
		return "", false
	}
	c, ok := v.(string)
	return c, ok
}

// Len returns the number of fields.
func (s Snapshot) Len() int { return len(s.fields) }

// Fields returns a copy of all fields, for logging and inspection.
func (s Snapshot) Fields() map[string]any {
	cp := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		cp[k] = v
	}
	return cp
}

// #endregion

// #region with

// With returns a new version with the given fields merged over this one.
// Values must be JSON-serializable (they end up in the outcome log); a
// value that is not, or an attempt to overwrite an existing context
// field, abandons the merge and returns the zero Snapshot with an error.
func (s Snapshot) With(fields map[string]any) (Snapshot, error) {
	for k, v := range fields {
		if k == ContextKey {
			if _, set := s.fields[ContextKey]; set {
				return Snapshot{}, fmt.Errorf("merge: field %q is immutable once set", ContextKey)
			}
		}
		if _, err := json.Marshal(v); err != nil {
			return Snapshot{}, fmt.Errorf("merge field %q: %w", k, err)
		}
	}

	next := make(map[string]any, len(s.fields)+len(fields))
	for k, v := range s.fields {
		next[k] = v
	}
	for k, v := range fields {
		next[k] = v
	}
	return Snapshot{
		versionID: uuid.New().String(),
		parentID:  s.versionID,
		fields:    next,
	}, nil
}

// #endregion

// #region without

// Without returns a new version with the given fields removed. The
// context field is never removed, regardless of the keys passed.
func (s Snapshot) Without(keys ...string) Snapshot {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == ContextKey {
			continue
		}
		drop[k] = true
	}

	next := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		if !drop[k] {
			next[k] = v
		}
	}
	return Snapshot{
		versionID: uuid.New().String(),
		parentID:  s.versionID,
		fields:    next,
	}
}

// #endregion

// #region reassign

// WithContext returns a new version with the context field replaced.
// This is the orchestrator-level reassignment path; execution and
// rollback cannot change context.
func (s Snapshot) WithContext(context string) Snapshot {
	next := make(map[string]any, len(s.fields)+1)
	for k, v := range s.fields {
		next[k] = v
	}
	next[ContextKey] = context
	return Snapshot{
		versionID: uuid.New().String(),
		parentID:  s.versionID,
		fields:    next,
	}
}

// #endregion
