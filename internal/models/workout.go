package models

import "time"

// WorkoutLog is one saved training session. Logs are never mutated once saved.
type WorkoutLog struct {
	ID        string          `json:"id" toml:"id"`
	Date      time.Time       `json:"date" toml:"date"`
	Exercises []ExerciseEntry `json:"exercises" toml:"exercise"`
	Wellness  *Wellness       `json:"wellness,omitempty" toml:"wellness,omitempty"`
	Notes     string          `json:"notes,omitempty" toml:"notes,omitempty"`
}

type ExerciseEntry struct {
	Name string     `json:"name" toml:"name"`
	Sets []SetEntry `json:"sets" toml:"set"`
}

// SetEntry weight is always stored in kilograms.
type SetEntry struct {
	Weight float64 `json:"weight" toml:"weight"`
	Reps   int     `json:"reps" toml:"reps"`
}

// Valid reports whether the set counts towards any metric.
func (s SetEntry) Valid() bool {
	return s.Weight > 0 && s.Reps > 0
}

func (s SetEntry) Volume() float64 {
	if !s.Valid() {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// Wellness values are self-reported on a 0-10 scale. Nil means not reported.
type Wellness struct {
	SleepQuality    *float64   `json:"sleepQuality,omitempty" toml:"sleep_quality,omitempty"`
	EnergyLevel     *float64   `json:"energyLevel,omitempty" toml:"energy_level,omitempty"`
	StressLevel     *float64   `json:"stressLevel,omitempty" toml:"stress_level,omitempty"`
	SorenessLevel   *float64   `json:"sorenessLevel,omitempty" toml:"soreness_level,omitempty"`
	SorenessMuscles []string   `json:"sorenessMuscles,omitempty" toml:"soreness_muscles,omitempty"`
	RecordedAt      *time.Time `json:"recordedAt,omitempty" toml:"recorded_at,omitempty"`
}

// Volume returns the sum of weight × reps over every valid set of the exercise.
func (e ExerciseEntry) Volume() float64 {
	var total float64
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

// ValidSets counts the sets that carry a positive weight and rep count.
func (e ExerciseEntry) ValidSets() int {
	n := 0
	for _, s := range e.Sets {
		if s.Valid() {
			n++
		}
	}
	return n
}

func (l WorkoutLog) TotalVolume() float64 {
	var total float64
	for _, ex := range l.Exercises {
		total += ex.Volume()
	}
	return total
}

type BodyStat struct {
	ID     string    `json:"id" toml:"id"`
	Date   time.Time `json:"date" toml:"date"`
	Weight float64   `json:"weight" toml:"weight"`
}

// Profile carries the free-text training goal, e.g. "cut for summer".
type Profile struct {
	Goal string `json:"goal" toml:"goal"`
}
