// Package sentiment scores crowd comments with the VADER lexicon and
// aggregates them into a single per-window label.
package sentiment

import (
	"math"
	"sort"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/tarund3/sports-fan-timeline/internal/models"
)

// labelThreshold splits the compound polarity range: above it is pos, below
// its negation is neg, everything between is mixed.
const labelThreshold = 0.25

// trimFraction is the denominator of the share of extreme-magnitude scores
// dropped from each end before averaging a window (1/10).
const trimFraction = 10

// Analyzer wraps the VADER lexicon. It holds no mutable state after
// construction and is safe to share across goroutines; build one at process
// start and inject it wherever scores are needed.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text in [-1, 1].
func (a *Analyzer) Score(text string) float64 {
	return a.sia.PolarityScores(text).Compound
}

// LabelScore classifies a single compound polarity score.
func LabelScore(score float64) models.SentimentLabel {
	switch {
	case score > labelThreshold:
		return models.SentimentPos
	case score < -labelThreshold:
		return models.SentimentNeg
	default:
		return models.SentimentMixed
	}
}

// Aggregate computes one label for a window's comments. Comments with no
// usable text contribute no score but never abort the aggregate; an empty
// window is mixed by definition.
func (a *Analyzer) Aggregate(comments []models.ElapsedComment) models.SentimentLabel {
	scores := make([]float64, 0, len(comments))
	for _, c := range comments {
		body := strings.TrimSpace(c.Body)
		if body == "" {
			continue
		}
		scores = append(scores, a.Score(body))
	}
	return AggregateScores(scores)
}

// AggregateScores classifies the trimmed mean of per-comment scores. Scores
// are sorted by absolute magnitude and the extremes dropped from both ends,
// so one loud comment cannot swing the window. Small windows (at most twice
// the trim count) are averaged untrimmed.
func AggregateScores(scores []float64) models.SentimentLabel {
	if len(scores) == 0 {
		return models.SentimentMixed
	}

	sorted := append([]float64(nil), scores...)
	sort.Slice(sorted, func(i, j int) bool {
		return math.Abs(sorted[i]) < math.Abs(sorted[j])
	})

	trim := len(sorted) / trimFraction
	if trim < 1 {
		trim = 1
	}
	if len(sorted) > 2*trim {
		sorted = sorted[trim : len(sorted)-trim]
	}

	var sum float64
	for _, s := range sorted {
		sum += s
	}
	return LabelScore(sum / float64(len(sorted)))
}
