package trend

import (
	"math"

	"github.com/misterclayt0n/ironflow/internal/metrics"
)

type Status string

const (
	StatusImproving Status = "improving"
	StatusDeclining Status = "declining"
	StatusStable    Status = "stable"
	StatusVariant   Status = "variant"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

const (
	// Changes below this percentage are treated as noise.
	stableBandPct = 5.0
	// Body weight must move at least this many kg to count as progress.
	bodyWeightThresholdKg = 0.2
	// Neutral goals still flag body weight swings above this percentage.
	bodyWeightVariantPct = 2.0
)

type Direction struct {
	Status    Status
	Sentiment Sentiment
	Delta     float64
	Pct       float64
}

// PercentChange is relative to |previous|. A zero previous value counts as a
// 100% increase when current is non-zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current != 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}

// EvalTrendDirection classifies the change of one metric between the previous
// and the recent window.
func EvalTrendDirection(kind metrics.Kind, current, previous float64, goal GoalDirection) Direction {
	d := Direction{
		Delta: current - previous,
		Pct:   PercentChange(current, previous),
	}

	if kind == metrics.BodyWeight {
		return evalBodyWeight(d, goal)
	}

	if math.Abs(d.Pct) < stableBandPct {
		d.Status, d.Sentiment = StatusStable, SentimentNeutral
		return d
	}

	if (d.Delta > 0) == metrics.Lookup(kind).HigherIsBetter {
		d.Status, d.Sentiment = StatusImproving, SentimentPositive
	} else {
		d.Status, d.Sentiment = StatusDeclining, SentimentNegative
	}
	return d
}

func evalBodyWeight(d Direction, goal GoalDirection) Direction {
	var improving bool
	switch goal {
	case GoalDown, GoalUp:
		// Moves under the threshold, including no data at all, are not progress either way.
		if math.Abs(d.Delta) < bodyWeightThresholdKg {
			d.Status, d.Sentiment = StatusStable, SentimentNeutral
			return d
		}
		improving = (d.Delta < 0) == (goal == GoalDown)
	default:
		d.Sentiment = SentimentNeutral
		if math.Abs(d.Pct) > bodyWeightVariantPct {
			d.Status = StatusVariant
		} else {
			d.Status = StatusStable
		}
		return d
	}

	if improving {
		d.Status, d.Sentiment = StatusImproving, SentimentPositive
	} else {
		d.Status, d.Sentiment = StatusDeclining, SentimentNegative
	}
	return d
}
