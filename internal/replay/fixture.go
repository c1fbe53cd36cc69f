package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description  string               `json:"description"`
	Registry     []FixtureStrategy    `json:"registry"`
	Interactions []FixtureInteraction `json:"interactions"`
	Expected     []FixtureExpected    `json:"expected_results,omitempty"`
}

// FixtureStrategy declares one registry entry for the replay run.
type FixtureStrategy struct {
	Context string         `json:"context"`
	Strict  bool           `json:"strict,omitempty"`
	Seed    map[string]any `json:"seed,omitempty"`
}

// FixtureInteraction is one recorded interaction. A non-empty Context
// switches the orchestrator's context before processing.
type FixtureInteraction struct {
	InteractionID string         `json:"interaction_id"`
	Context       string         `json:"context,omitempty"`
	UserData      map[string]any `json:"user_data"`
}

// FixtureExpected captures the expected action per interaction.
type FixtureExpected struct {
	InteractionID string `json:"interaction_id"`
	Action        string `json:"action"`
}

// #endregion

// #region load

// LoadFixture reads and validates a JSON fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}

	if len(f.Registry) == 0 {
		return Fixture{}, fmt.Errorf("fixture declares no strategies")
	}
	for i, spec := range f.Registry {
		if spec.Context == "" {
			return Fixture{}, fmt.Errorf("registry entry %d: missing context", i)
		}
	}
	for i, inter := range f.Interactions {
		if inter.InteractionID == "" {
			return Fixture{}, fmt.Errorf("interaction %d: missing interaction_id", i)
		}
	}
	return f, nil
}

// #endregion
