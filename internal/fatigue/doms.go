package fatigue

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
)

const maxTimelineEntries = 20

// Hotspot aggregates every soreness report of one muscle.
type Hotspot struct {
	Muscle           string
	Label            string
	Occurrences      int
	AvgIntensity     float64
	LastReportedAt   time.Time
	LastIntensity    *float64
	AvgRecoveryDays  *float64
	LastRecoveryDays *int
}

type SoreMuscle struct {
	ID                string
	Label             string
	DaysSinceStimulus *int
	LastStimulus      *time.Time
}

// SorenessReport is one wellness entry that named sore muscles.
type SorenessReport struct {
	Date       time.Time
	RecordedAt time.Time
	Intensity  *float64
	Muscles    []SoreMuscle
}

type DomsInsights struct {
	Hotspots     []Hotspot
	Timeline     []SorenessReport
	TotalReports int
}

type stimulus struct {
	date    time.Time
	muscles map[string]struct{}
}

type hotspotStats struct {
	occurrences  int
	intensitySum float64
	lastReport   time.Time
	lastIntens   *float64
	gapSum       int
	gapCount     int
	lastGap      *int
}

// ComputeDomsInsights relates soreness reports to the training that caused
// them. For each sore muscle it finds the last session before the report
// that loaded it, and how many days separate the two.
func ComputeDomsInsights(logs []models.WorkoutLog, db MuscleDB) DomsInsights {
	if db == nil {
		db = DefaultMuscleDB
	}

	var stimuli []stimulus
	for _, workout := range logs {
		if workout.Date.IsZero() {
			continue
		}
		muscles := make(map[string]struct{})
		for _, ex := range workout.Exercises {
			for _, g := range db.Lookup(ex.Name) {
				muscles[g] = struct{}{}
			}
		}
		stimuli = append(stimuli, stimulus{date: workout.Date, muscles: muscles})
	}
	sort.SliceStable(stimuli, func(i, j int) bool {
		return stimuli[i].date.Before(stimuli[j].date)
	})

	lastStimulusBefore := func(muscle string, before time.Time) *time.Time {
		for i := len(stimuli) - 1; i >= 0; i-- {
			s := stimuli[i]
			if !s.date.Before(before) {
				continue
			}
			if _, ok := s.muscles[muscle]; ok {
				d := s.date
				return &d
			}
		}
		return nil
	}

	stats := make(map[string]*hotspotStats)
	var timeline []SorenessReport

	for _, workout := range logs {
		w := workout.Wellness
		if w == nil || len(w.SorenessMuscles) == 0 {
			continue
		}
		recordedAt := workout.Date
		if w.RecordedAt != nil {
			recordedAt = *w.RecordedAt
		}
		if recordedAt.IsZero() {
			continue
		}

		report := SorenessReport{
			Date:       workout.Date,
			RecordedAt: recordedAt,
			Intensity:  w.SorenessLevel,
		}

		for _, raw := range w.SorenessMuscles {
			muscle := strings.ToLower(strings.TrimSpace(raw))
			if muscle == "" {
				continue
			}

			sore := SoreMuscle{ID: muscle, Label: Label(muscle)}
			if last := lastStimulusBefore(muscle, recordedAt); last != nil {
				gap := int(math.Round(recordedAt.Sub(*last).Hours() / 24))
				if gap < 0 {
					gap = 0
				}
				sore.DaysSinceStimulus = &gap
				sore.LastStimulus = last
			}
			report.Muscles = append(report.Muscles, sore)

			st, ok := stats[muscle]
			if !ok {
				st = &hotspotStats{}
				stats[muscle] = st
			}
			st.occurrences++
			if w.SorenessLevel != nil {
				st.intensitySum += *w.SorenessLevel
			}
			if sore.DaysSinceStimulus != nil {
				st.gapSum += *sore.DaysSinceStimulus
				st.gapCount++
			}
			if st.lastReport.IsZero() || recordedAt.After(st.lastReport) {
				st.lastReport = recordedAt
				st.lastIntens = w.SorenessLevel
				st.lastGap = sore.DaysSinceStimulus
			}
		}

		if len(report.Muscles) > 0 {
			timeline = append(timeline, report)
		}
	}

	hotspots := make([]Hotspot, 0, len(stats))
	for muscle, st := range stats {
		h := Hotspot{
			Muscle:           muscle,
			Label:            Label(muscle),
			Occurrences:      st.occurrences,
			AvgIntensity:     roundTenth(st.intensitySum / float64(st.occurrences)),
			LastReportedAt:   st.lastReport,
			LastIntensity:    st.lastIntens,
			LastRecoveryDays: st.lastGap,
		}
		if st.gapCount > 0 {
			avg := roundTenth(float64(st.gapSum) / float64(st.gapCount))
			h.AvgRecoveryDays = &avg
		}
		hotspots = append(hotspots, h)
	}
	sort.Slice(hotspots, func(i, j int) bool {
		a, b := hotspots[i], hotspots[j]
		if a.Occurrences != b.Occurrences {
			return a.Occurrences > b.Occurrences
		}
		if !a.LastReportedAt.Equal(b.LastReportedAt) {
			return a.LastReportedAt.After(b.LastReportedAt)
		}
		return a.Muscle < b.Muscle
	})

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].RecordedAt.After(timeline[j].RecordedAt)
	})
	total := len(timeline)
	if len(timeline) > maxTimelineEntries {
		timeline = timeline[:maxTimelineEntries]
	}

	return DomsInsights{
		Hotspots:     hotspots,
		Timeline:     timeline,
		TotalReports: total,
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
