package trend

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/ironflow/internal/bucket"
	"github.com/misterclayt0n/ironflow/internal/metrics"
	"github.com/misterclayt0n/ironflow/internal/models"
	log "github.com/sirupsen/logrus"
)

// TrendMetric is one row of the trend report.
type TrendMetric struct {
	ID           metrics.Kind `json:"id"`
	Label        string       `json:"label"`
	Current      float64      `json:"current"`
	Previous     float64      `json:"previous"`
	CurrentText  string       `json:"currentText"`
	PreviousText string       `json:"previousText"`
	Status       Status       `json:"status"`
	Sentiment    Sentiment    `json:"sentiment"`
	Delta        float64      `json:"delta"`
	Pct          float64      `json:"pct"`
	Summary      string       `json:"summary"`
}

type Result struct {
	Metrics     []TrendMetric `json:"metrics"`
	Digest      string        `json:"digest"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

type Engine struct {
	days int
	now  func() time.Time
}

// NewEngine builds an engine comparing two windows of `days` days each.
// now defaults to the wall clock; tests pass a fixed reference time.
func NewEngine(days int, now func() time.Time) *Engine {
	if days <= 0 {
		days = bucket.DefaultDays
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		days: days,
		now:  now,
	}
}

// Evaluate compares the recent window against the previous one for every
// metric. It never fails: missing data collapses to zero values.
func (e *Engine) Evaluate(
	logs []models.WorkoutLog,
	bodyStats []models.BodyStat,
	profile models.Profile,
	unit metrics.Unit,
) *Result {
	now := e.now()
	logBuckets := bucket.Split(logs, func(l models.WorkoutLog) time.Time { return l.Date }, now, e.days)
	statBuckets := bucket.Split(bodyStats, func(s models.BodyStat) time.Time { return s.Date }, now, e.days)

	result := &Result{
		Metrics:     []TrendMetric{},
		GeneratedAt: now,
	}

	log.Debugf("trend: %d/%d logs, %d/%d body stats in recent/previous windows",
		len(logBuckets.Recent), len(logBuckets.Previous),
		len(statBuckets.Recent), len(statBuckets.Previous),
	)

	if len(logBuckets.All()) == 0 && len(statBuckets.All()) == 0 {
		result.Digest = InsufficientDataDigest
		return result
	}

	goal := ClassifyGoal(profile)
	add := func(kind metrics.Kind, current, previous float64) {
		result.Metrics = append(result.Metrics, buildMetric(kind, current, previous, goal, unit))
	}

	recent, previous := logBuckets.Recent, logBuckets.Previous
	add(metrics.Frequency, frequency(recent, e.days), frequency(previous, e.days))
	add(metrics.Volume, volumePerSession(recent), volumePerSession(previous))

	currentWeight, previousWeight := withFallback(
		averageBodyWeight(statBuckets.Recent),
		averageBodyWeight(statBuckets.Previous),
	)
	add(metrics.BodyWeight, currentWeight, previousWeight)

	add(metrics.PRs, prSnapshot(recent), prSnapshot(previous))
	add(metrics.Consistency, consistency(logBuckets.All()), consistency(previous))

	for _, kind := range metrics.Wellness {
		current, prev := averageWellness(recent, kind), averageWellness(previous, kind)
		if current == 0 && prev == 0 {
			continue
		}
		current, prev = withFallback(current, prev)
		add(kind, current, prev)
	}

	result.Digest = BuildDigest(result.Metrics)
	return result
}

func buildMetric(kind metrics.Kind, current, previous float64, goal GoalDirection, unit metrics.Unit) TrendMetric {
	def := metrics.Lookup(kind)
	dir := EvalTrendDirection(kind, current, previous, goal)
	return TrendMetric{
		ID:           kind,
		Label:        def.Label,
		Current:      current,
		Previous:     previous,
		CurrentText:  def.Format(current, unit),
		PreviousText: def.Format(previous, unit),
		Status:       dir.Status,
		Sentiment:    dir.Sentiment,
		Delta:        dir.Delta,
		Pct:          dir.Pct,
		Summary:      FormatDelta(dir),
	}
}

// FormatDelta renders an arrow and the signed percentage, e.g. "⬆️ +12.5%".
func FormatDelta(d Direction) string {
	arrow := "➡️"
	switch d.Status {
	case StatusImproving:
		arrow = "⬆️"
	case StatusDeclining:
		arrow = "⬇️"
	}

	if d.Pct == 0 {
		return arrow
	}
	sign := ""
	if d.Pct > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s %s%.1f%%", arrow, sign, d.Pct)
}

const InsufficientDataDigest = "Not enough data to evaluate your recent trend. Log a few workouts and try again."

// BuildDigest summarizes improving and declining metrics in two sentences.
func BuildDigest(metricsList []TrendMetric) string {
	if len(metricsList) == 0 {
		return InsufficientDataDigest
	}

	var positives, negatives []string
	for _, m := range metricsList {
		switch m.Status {
		case StatusImproving:
			positives = append(positives, m.Label)
		case StatusDeclining:
			negatives = append(negatives, m.Label)
		}
	}

	positiveText := "No clear improvement in your recent logs"
	if len(positives) > 0 {
		positiveText = "Good news on " + strings.Join(positives, ", ")
	}
	negativeText := "No significant regression detected"
	if len(negatives) > 0 {
		negativeText = "Watch out for " + strings.Join(negatives, ", ")
	}

	return fmt.Sprintf("%s. %s. Keep logging to track your progress more precisely.", positiveText, negativeText)
}
