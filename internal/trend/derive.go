package trend

import (
	"time"

	"github.com/misterclayt0n/ironflow/internal/metrics"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
)

// Target the consistency score compares against.
const targetSessionsPerWeek = 4

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func trainingDays(logs []models.WorkoutLog) int {
	days := make(map[string]struct{})
	for _, l := range logs {
		if l.Date.IsZero() {
			continue
		}
		days[utils.DayKey(l.Date)] = struct{}{}
	}
	return len(days)
}

// frequency is distinct training days per week over a window of windowDays.
func frequency(logs []models.WorkoutLog, windowDays int) float64 {
	weeks := float64(windowDays) / 7
	if weeks <= 0 {
		return 0
	}
	return float64(trainingDays(logs)) / weeks
}

func volumePerSession(logs []models.WorkoutLog) float64 {
	volumes := make([]float64, 0, len(logs))
	for _, l := range logs {
		volumes = append(volumes, l.TotalVolume())
	}
	return average(volumes)
}

func averageBodyWeight(stats []models.BodyStat) float64 {
	weights := make([]float64, 0, len(stats))
	for _, s := range stats {
		if s.Weight > 0 {
			weights = append(weights, s.Weight)
		}
	}
	return average(weights)
}

// prSnapshot takes the best Epley estimate per exercise and averages them.
func prSnapshot(logs []models.WorkoutLog) float64 {
	best := make(map[string]float64)
	for _, l := range logs {
		for _, ex := range l.Exercises {
			for _, set := range ex.Sets {
				if !set.Valid() {
					continue
				}
				estimate := utils.CalculateEpley1RM(set.Weight, set.Reps)
				if estimate > best[ex.Name] {
					best[ex.Name] = estimate
				}
			}
		}
	}

	values := make([]float64, 0, len(best))
	for _, v := range best {
		values = append(values, v)
	}
	return average(values)
}

// consistency is actual training days against four per week over the span
// from the oldest to the newest log, never less than one week, capped at 1.
func consistency(logs []models.WorkoutLog) float64 {
	var oldest, newest time.Time
	for _, l := range logs {
		if l.Date.IsZero() {
			continue
		}
		if oldest.IsZero() || l.Date.Before(oldest) {
			oldest = l.Date
		}
		if newest.IsZero() || l.Date.After(newest) {
			newest = l.Date
		}
	}
	if oldest.IsZero() {
		return 0
	}

	weeks := newest.Sub(oldest).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	ratio := float64(trainingDays(logs)) / (weeks * targetSessionsPerWeek)
	if ratio > 1 {
		return 1
	}
	return ratio
}

func wellnessValue(w *models.Wellness, kind metrics.Kind) *float64 {
	if w == nil {
		return nil
	}
	switch kind {
	case metrics.SleepQuality:
		return w.SleepQuality
	case metrics.EnergyLevel:
		return w.EnergyLevel
	case metrics.StressLevel:
		return w.StressLevel
	case metrics.SorenessLevel:
		return w.SorenessLevel
	default:
		return nil
	}
}

// averageWellness averages one wellness field over the logs that report it.
func averageWellness(logs []models.WorkoutLog, kind metrics.Kind) float64 {
	var values []float64
	for _, l := range logs {
		if v := wellnessValue(l.Wellness, kind); v != nil {
			values = append(values, *v)
		}
	}
	return average(values)
}

// withFallback fills an empty side with the other one so missing data does
// not read as a 100% change.
func withFallback(current, previous float64) (float64, float64) {
	if current == 0 {
		current = previous
	}
	if previous == 0 {
		previous = current
	}
	return current, previous
}
