package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ironflow/internal/models"
)

type workoutTOML struct {
	ID        string                 `toml:"id"`
	Date      interface{}            `toml:"date"`
	Notes     string                 `toml:"notes"`
	Exercises []models.ExerciseEntry `toml:"exercise"`
	Wellness  *models.Wellness       `toml:"wellness"`
}

type workoutFileTOML struct {
	Workouts []workoutTOML `toml:"workout"`
}

// ParseWorkoutsFromTOML reads a file of [[workout]] tables.
// Dates may be TOML datetimes or strings; an unparsable date is kept as the zero time.
func ParseWorkoutsFromTOML(path string) ([]models.WorkoutLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file workoutFileTOML
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid TOML format: %w", err)
	}

	logs := make([]models.WorkoutLog, 0, len(file.Workouts))
	for _, w := range file.Workouts {
		logs = append(logs, models.WorkoutLog{
			ID:        w.ID,
			Date:      tomlDate(w.Date),
			Exercises: w.Exercises,
			Wellness:  w.Wellness,
			Notes:     w.Notes,
		})
	}
	return logs, nil
}

func tomlDate(v interface{}) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		t, _ := ParseDate(d)
		return t
	default:
		return time.Time{}
	}
}
