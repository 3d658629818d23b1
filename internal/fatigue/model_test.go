package fatigue

import (
	"testing"
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return refNow }

func daysAgo(n int) time.Time {
	return refNow.AddDate(0, 0, -n)
}

func sets(n int, weight float64, reps int) []models.SetEntry {
	out := make([]models.SetEntry, n)
	for i := range out {
		out[i] = models.SetEntry{Weight: weight, Reps: reps}
	}
	return out
}

func session(date time.Time, exercises ...models.ExerciseEntry) models.WorkoutLog {
	return models.WorkoutLog{Date: date, Exercises: exercises}
}

func TestCalculateFatigue_AllGroupsPresent(t *testing.T) {
	scores := NewModel(nil, fixedNow).CalculateFatigue(nil, DefaultDays)

	require.Len(t, scores, len(Groups))
	for _, g := range Groups {
		assert.Zero(t, scores[g.ID], g.ID)
	}
}

func TestCalculateFatigue_Decay(t *testing.T) {
	model := NewModel(nil, fixedNow)
	bench := func(date time.Time) []models.WorkoutLog {
		return []models.WorkoutLog{session(date, models.ExerciseEntry{Name: "Bench Press", Sets: sets(3, 80, 8)})}
	}

	tests := []struct {
		name string
		date time.Time
		want float64
	}{
		{"today", refNow, 60},
		{"one day ago", daysAgo(1), 54},
		{"seven days ago", daysAgo(7), 18},
		{"eight days ago is outside the window", daysAgo(8), 0},
		{"future dates count as today", refNow.Add(3 * time.Hour), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := model.CalculateFatigue(bench(tt.date), DefaultDays)
			assert.InDelta(t, tt.want, scores["chest"], 1e-9)
			assert.InDelta(t, tt.want, scores["triceps"], 1e-9)
			assert.Zero(t, scores["quads"])
		})
	}
}

func TestCalculateFatigue_ClampsAtMax(t *testing.T) {
	logs := []models.WorkoutLog{
		session(refNow, models.ExerciseEntry{Name: "Squat", Sets: sets(5, 100, 5)}),
		session(daysAgo(1), models.ExerciseEntry{Name: "Squat", Sets: sets(5, 100, 5)}),
	}

	scores := NewModel(nil, fixedNow).CalculateFatigue(logs, DefaultDays)
	assert.Equal(t, MaxScore, scores["quads"])
	assert.Equal(t, MaxScore, scores["glutes"])
}

func TestCalculateFatigue_InvalidSetsAndUnknownExercises(t *testing.T) {
	logs := []models.WorkoutLog{
		session(refNow,
			models.ExerciseEntry{Name: "Panca Piana", Sets: []models.SetEntry{{Weight: 0, Reps: 10}, {Weight: 60, Reps: 0}, {Weight: 60, Reps: 10}}},
			models.ExerciseEntry{Name: "Juggling", Sets: sets(4, 5, 10)},
		),
		{Exercises: []models.ExerciseEntry{{Name: "Curl", Sets: sets(3, 10, 10)}}},
	}

	scores := NewModel(nil, fixedNow).CalculateFatigue(logs, DefaultDays)
	assert.Equal(t, 20.0, scores["chest"])
	assert.Zero(t, scores["biceps"])
	assert.Len(t, scores, len(Groups))
}

func TestCalculateFatigue_CustomWindow(t *testing.T) {
	logs := []models.WorkoutLog{session(daysAgo(10), models.ExerciseEntry{Name: "Curl", Sets: sets(2, 10, 10)})}
	model := NewModel(nil, fixedNow)

	assert.Zero(t, model.CalculateFatigue(logs, 7)["biceps"])
	assert.InDelta(t, 8.0, model.CalculateFatigue(logs, 14)["biceps"], 1e-9)
	assert.Zero(t, model.CalculateFatigue(logs, 0)["biceps"])
}

func TestMuscleDB_FirstMatchWins(t *testing.T) {
	assert.Equal(t, []string{"upper-chest", "front-delts", "triceps"}, DefaultMuscleDB.Lookup("Panca Inclinata Manubri"))
	assert.Equal(t, []string{"chest", "front-delts", "triceps"}, DefaultMuscleDB.Lookup("Panca Piana 20kg"))
	assert.Equal(t, []string{"hamstrings"}, DefaultMuscleDB.Lookup("Leg Curl"))
	assert.Equal(t, []string{"biceps"}, DefaultMuscleDB.Lookup("EZ Bar Curl"))
	assert.Nil(t, DefaultMuscleDB.Lookup("Juggling"))
	assert.Nil(t, DefaultMuscleDB.Lookup(""))

	custom := MuscleDB{{"press", []string{"chest"}}, {"leg press", []string{"quads"}}}
	assert.Equal(t, []string{"chest"}, custom.Lookup("Leg Press"))
}

func TestMuscleDB_GroupsAreKnown(t *testing.T) {
	known := make(map[string]bool)
	for _, g := range Groups {
		known[g.ID] = true
	}
	for _, e := range DefaultMuscleDB {
		for _, g := range e.Groups {
			assert.True(t, known[g], "%s maps to unknown group %s", e.Key, g)
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{0, LevelIdle},
		{-5, LevelIdle},
		{0.1, LevelLow},
		{29.9, LevelLow},
		{30, LevelActive},
		{69.9, LevelActive},
		{70, LevelOverload},
		{100, LevelOverload},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelOf(tt.score), "score %v", tt.score)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Lower Back", Label("lower-back"))
	assert.Equal(t, "neck", Label("neck"))
}
