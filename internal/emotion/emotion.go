package emotion

// #region imports
import (
	"context"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #endregion

// #region lexicons

var positiveWords = []string{
	"love", "great", "excellent", "awesome", "amazing", "fantastic",
	"happy", "pleased", "satisfied", "enjoy", "wonderful", "perfect",
	"thanks", "thank you", "helpful", "impressed", "works well",
	"recommend", "delighted", "glad",
}

var negativeWords = []string{
	"hate", "terrible", "awful", "horrible", "broken", "useless",
	"angry", "frustrated", "disappointed", "annoyed", "upset",
	"cancel", "refund", "unsubscribe", "waste", "scam", "ripoff",
	"too expensive", "overpriced", "not working", "doesn't work",
	"worst", "never again",
}

// intensifiers raise the intensity estimate without shifting sentiment.
var intensifiers = []string{
	"very", "extremely", "absolutely", "completely", "totally",
	"really", "so much", "incredibly", "utterly",
}

// #endregion

// #region analyzer

// Analyzer infers sentiment and intensity from the string fields of an
// interaction record via lexicon matching. No model call; it backs
// replay runs and deployments without the model service.
type Analyzer struct{}

// NewAnalyzer creates a keyword-heuristic analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze scans every string field of the record. It fails on a record
// with no text to analyze.
func (a *Analyzer) Analyze(_ context.Context, record map[string]any) (strategy.EmotionSignal, error) {
	var parts []string
	for _, v := range record {
		if s, ok := v.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return strategy.EmotionSignal{}, fmt.Errorf("no text fields in interaction record")
	}

	text := strings.ToLower(strings.Join(parts, " "))

	pos := countMatches(text, positiveWords)
	neg := countMatches(text, negativeWords)
	boost := countMatches(text, intensifiers)

	sentiment := "neutral"
	switch {
	case pos > neg:
		sentiment = "positive"
	case neg > pos:
		sentiment = "negative"
	}

	matches := pos + neg
	intensity := 0.2*float64(matches) + 0.1*float64(boost)
	if sentiment == "neutral" {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	return strategy.EmotionSignal{Sentiment: sentiment, Intensity: intensity}, nil
}

// #endregion

// #region helpers

func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		n += strings.Count(text, w)
	}
	return n
}

// #endregion
