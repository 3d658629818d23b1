package models

import "time"

// SessionState is the in-progress workout kept on disk between CLI calls.
type SessionState struct {
	SessionID string          `toml:"session_id"`
	StartTime time.Time       `toml:"start_time"`
	Exercises []ExerciseEntry `toml:"exercise"`
	Notes     string          `toml:"notes,omitempty"`
	Wellness  *Wellness       `toml:"wellness,omitempty"`
}

// ToLog turns the draft into the immutable log that gets saved.
func (s *SessionState) ToLog() WorkoutLog {
	exercises := make([]ExerciseEntry, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		if len(ex.Sets) == 0 {
			continue
		}
		exercises = append(exercises, ex)
	}
	return WorkoutLog{
		ID:        s.SessionID,
		Date:      s.StartTime,
		Exercises: exercises,
		Wellness:  s.Wellness,
		Notes:     s.Notes,
	}
}
