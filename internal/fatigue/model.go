package fatigue

import (
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultDays = 7

	MaxScore       = 100.0
	pointsPerSet   = 20.0
	decayPerDay    = 0.1
	minRecencyMult = 0.2
)

// Map holds a score in [0,100] for every known muscle group.
type Map map[string]float64

// Model computes decayed per-muscle training load. It keeps no state
// between calls: every calculation starts from zero.
type Model struct {
	db  MuscleDB
	now func() time.Time
}

// NewModel returns a Model over db. A nil db uses DefaultMuscleDB and a nil
// now uses the wall clock.
func NewModel(db MuscleDB, now func() time.Time) *Model {
	if db == nil {
		db = DefaultMuscleDB
	}
	if now == nil {
		now = time.Now
	}
	return &Model{db: db, now: now}
}

// RecencyMultiplier is 1.0 for a session today and decays linearly by 0.1
// per day down to a floor of 0.2.
func RecencyMultiplier(daysAgo int) float64 {
	m := 1 - float64(daysAgo)*decayPerDay
	if m < minRecencyMult {
		return minRecencyMult
	}
	return m
}

// CalculateFatigue scores each muscle group from the logs dated within the
// last days days. Every valid set of a matched exercise adds 20 points,
// scaled by the recency of its session, to each group the exercise loads.
func (m *Model) CalculateFatigue(logs []models.WorkoutLog, days int) Map {
	if days <= 0 {
		days = DefaultDays
	}

	scores := make(Map, len(Groups))
	for _, g := range Groups {
		scores[g.ID] = 0
	}

	now := m.now()
	cutoff := now.AddDate(0, 0, -days)
	for _, workout := range logs {
		if workout.Date.IsZero() || workout.Date.Before(cutoff) {
			continue
		}
		mult := RecencyMultiplier(utils.DaysBetween(workout.Date, now))

		for _, ex := range workout.Exercises {
			groups := m.db.Lookup(ex.Name)
			if len(groups) == 0 {
				log.Debugf("fatigue: no muscle mapping for exercise [%s]", ex.Name)
				continue
			}
			sets := ex.ValidSets()
			if sets == 0 {
				continue
			}
			for _, g := range groups {
				scores[g] += float64(sets) * pointsPerSet * mult
			}
		}
	}

	for g, s := range scores {
		if s > MaxScore {
			scores[g] = MaxScore
		}
	}
	return scores
}

// Level is the display intensity of a fatigue score.
type Level string

const (
	LevelIdle     Level = "idle"
	LevelLow      Level = "low"
	LevelActive   Level = "active"
	LevelOverload Level = "overload"
)

func LevelOf(score float64) Level {
	switch {
	case score <= 0:
		return LevelIdle
	case score < 30:
		return LevelLow
	case score < 70:
		return LevelActive
	default:
		return LevelOverload
	}
}
