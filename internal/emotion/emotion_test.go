package emotion

import (
	"context"
	"testing"
)

func TestAnalyze(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name          string
		record        map[string]any
		wantSentiment string
	}{
		{
			"positive",
			map[string]any{"message": "This is great, I love the new plan"},
			"positive",
		},
		{
			"negative",
			map[string]any{"message": "Terrible service, I want a refund"},
			"negative",
		},
		{
			"neutral",
			map[string]any{"message": "Please update my billing address"},
			"neutral",
		},
		{
			"mixed-leans-negative",
			map[string]any{"message": "The app is great but support is terrible and broken"},
			"negative",
		},
		{
			"non-string-fields-ignored",
			map[string]any{"visits": 12, "message": "happy with everything"},
			"positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := a.Analyze(context.Background(), tt.record)
			if err != nil {
				t.Fatal(err)
			}
			if sig.Sentiment != tt.wantSentiment {
				t.Errorf("sentiment = %q, want %q", sig.Sentiment, tt.wantSentiment)
			}
			if sig.Intensity < 0 || sig.Intensity > 1 {
				t.Errorf("intensity out of range: %v", sig.Intensity)
			}
		})
	}
}

func TestAnalyze_IntensityScalesWithMatches(t *testing.T) {
	a := NewAnalyzer()

	mild, err := a.Analyze(context.Background(), map[string]any{"m": "this is great"})
	if err != nil {
		t.Fatal(err)
	}
	strong, err := a.Analyze(context.Background(), map[string]any{"m": "absolutely great, amazing, extremely happy, love it"})
	if err != nil {
		t.Fatal(err)
	}
	if strong.Intensity <= mild.Intensity {
		t.Errorf("strong %v <= mild %v", strong.Intensity, mild.Intensity)
	}
}

func TestAnalyze_NeutralHasZeroIntensity(t *testing.T) {
	a := NewAnalyzer()
	sig, err := a.Analyze(context.Background(), map[string]any{"m": "update my address"})
	if err != nil {
		t.Fatal(err)
	}
	if sig.Intensity != 0 {
		t.Errorf("neutral intensity = %v, want 0", sig.Intensity)
	}
}

func TestAnalyze_EmptyRecordFails(t *testing.T) {
	a := NewAnalyzer()

	for _, record := range []map[string]any{nil, {}, {"visits": 3}} {
		if _, err := a.Analyze(context.Background(), record); err == nil {
			t.Errorf("expected error for record %v", record)
		}
	}
}
