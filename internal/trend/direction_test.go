package trend

import (
	"testing"

	"github.com/misterclayt0n/ironflow/internal/metrics"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEvalTrendDirection(t *testing.T) {
	tests := []struct {
		name      string
		kind      metrics.Kind
		current   float64
		previous  float64
		goal      GoalDirection
		status    Status
		sentiment Sentiment
	}{
		{"small volume change is stable", metrics.Volume, 104, 100, GoalNeutral, StatusStable, SentimentNeutral},
		{"small volume drop is stable", metrics.Volume, 96, 100, GoalNeutral, StatusStable, SentimentNeutral},
		{"volume up", metrics.Volume, 110, 100, GoalNeutral, StatusImproving, SentimentPositive},
		{"volume down", metrics.Volume, 90, 100, GoalNeutral, StatusDeclining, SentimentNegative},
		{"stress up is bad", metrics.StressLevel, 6, 4, GoalNeutral, StatusDeclining, SentimentNegative},
		{"soreness down is good", metrics.SorenessLevel, 3, 5, GoalNeutral, StatusImproving, SentimentPositive},
		{"from zero counts as growth", metrics.Frequency, 2, 0, GoalNeutral, StatusImproving, SentimentPositive},
		{"both zero is stable", metrics.Frequency, 0, 0, GoalNeutral, StatusStable, SentimentNeutral},
		{"cut losing weight", metrics.BodyWeight, 79.5, 80, GoalDown, StatusImproving, SentimentPositive},
		{"cut gaining weight", metrics.BodyWeight, 80.5, 80, GoalDown, StatusDeclining, SentimentNegative},
		{"cut below threshold", metrics.BodyWeight, 79.9, 80, GoalDown, StatusStable, SentimentNeutral},
		{"cut small gain", metrics.BodyWeight, 80.1, 80, GoalDown, StatusStable, SentimentNeutral},
		{"cut at threshold", metrics.BodyWeight, 79.75, 80, GoalDown, StatusImproving, SentimentPositive},
		{"cut without weigh-ins", metrics.BodyWeight, 0, 0, GoalDown, StatusStable, SentimentNeutral},
		{"bulk without weigh-ins", metrics.BodyWeight, 0, 0, GoalUp, StatusStable, SentimentNeutral},
		{"bulk gaining at threshold", metrics.BodyWeight, 80.25, 80, GoalUp, StatusImproving, SentimentPositive},
		{"bulk gaining weight", metrics.BodyWeight, 80.5, 80, GoalUp, StatusImproving, SentimentPositive},
		{"bulk losing weight", metrics.BodyWeight, 79.5, 80, GoalUp, StatusDeclining, SentimentNegative},
		{"neutral big swing", metrics.BodyWeight, 82, 80, GoalNeutral, StatusVariant, SentimentNeutral},
		{"neutral small swing", metrics.BodyWeight, 81, 80, GoalNeutral, StatusStable, SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvalTrendDirection(tt.kind, tt.current, tt.previous, tt.goal)
			assert.Equal(t, tt.status, d.Status)
			assert.Equal(t, tt.sentiment, d.Sentiment)
			assert.InDelta(t, tt.current-tt.previous, d.Delta, 1e-9)
		})
	}
}

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 25.0, PercentChange(125, 100), 1e-9)
	assert.InDelta(t, -50.0, PercentChange(50, 100), 1e-9)
	assert.InDelta(t, 100.0, PercentChange(-50, -100), 1e-9)
	assert.Equal(t, 100.0, PercentChange(3, 0))
	assert.Equal(t, 0.0, PercentChange(0, 0))
}

func TestClassifyGoal(t *testing.T) {
	tests := []struct {
		goal string
		want GoalDirection
	}{
		{"Cut for summer", GoalDown},
		{"definizione", GoalDown},
		{"lean bulk", GoalDown},
		{"Bulk", GoalUp},
		{"massa muscolare", GoalUp},
		{"build strength", GoalUp},
		{"stay healthy", GoalNeutral},
		{"", GoalNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyGoal(models.Profile{Goal: tt.goal}))
		})
	}
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "⬆️ +12.5%", FormatDelta(Direction{Status: StatusImproving, Pct: 12.5}))
	assert.Equal(t, "⬇️ -7.0%", FormatDelta(Direction{Status: StatusDeclining, Pct: -7}))
	assert.Equal(t, "➡️ +3.2%", FormatDelta(Direction{Status: StatusStable, Pct: 3.2}))
	assert.Equal(t, "➡️", FormatDelta(Direction{Status: StatusStable}))
}
