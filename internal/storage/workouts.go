package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
)

// SaveLog inserts a workout log with its exercises and sets. A log without
// an ID gets a fresh one. Logs are immutable: saving an existing ID fails.
func (s *Storage) SaveLog(ctx context.Context, workout *models.WorkoutLog) error {
	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}

	var wellness sql.NullString
	if workout.Wellness != nil {
		b, err := json.Marshal(workout.Wellness)
		if err != nil {
			return fmt.Errorf("encode wellness: %w", err)
		}
		wellness = sql.NullString{String: string(b), Valid: true}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO workout_logs (id, date, notes, wellness) VALUES (?, ?, ?, ?)",
		workout.ID, workout.Date.Format(time.RFC3339), workout.Notes, wellness,
	); err != nil {
		return fmt.Errorf("insert workout log: %w", err)
	}

	for i, ex := range workout.Exercises {
		exerciseID := uuid.New().String()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO log_exercises (id, log_id, position, name) VALUES (?, ?, ?, ?)",
			exerciseID, workout.ID, i, ex.Name,
		); err != nil {
			return fmt.Errorf("insert exercise %s: %w", ex.Name, err)
		}

		for j, set := range ex.Sets {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO log_sets (id, log_exercise_id, position, weight, reps) VALUES (?, ?, ?, ?, ?)",
				uuid.New().String(), exerciseID, j, set.Weight, set.Reps,
			); err != nil {
				return fmt.Errorf("insert set for %s: %w", ex.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit workout log: %w", err)
	}
	return nil
}

// ListLogs returns every saved log, newest first.
func (s *Storage) ListLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, date, notes, wellness
        FROM workout_logs
        ORDER BY date DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer rows.Close()

	var logs []models.WorkoutLog
	index := make(map[string]int)
	for rows.Next() {
		var (
			l        models.WorkoutLog
			rawDate  string
			notes    sql.NullString
			wellness sql.NullString
		)
		if err := rows.Scan(&l.ID, &rawDate, &notes, &wellness); err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}
		l.Date, _ = time.Parse(time.RFC3339, rawDate)
		l.Notes = notes.String
		if wellness.Valid && wellness.String != "" {
			var w models.Wellness
			if err := json.Unmarshal([]byte(wellness.String), &w); err == nil {
				l.Wellness = &w
			}
		}
		index[l.ID] = len(logs)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout logs: %w", err)
	}

	if err := s.attachExercises(ctx, logs, index); err != nil {
		return nil, err
	}
	return logs, nil
}

// attachExercises loads all exercises and sets in one query and hangs them
// off the logs they belong to, keeping their original order.
func (s *Storage) attachExercises(ctx context.Context, logs []models.WorkoutLog, index map[string]int) error {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT le.log_id, le.id, le.name, ls.weight, ls.reps
        FROM log_exercises le
        LEFT JOIN log_sets ls ON ls.log_exercise_id = le.id
        ORDER BY le.log_id, le.position, ls.position
    `)
	if err != nil {
		return fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	lastExercise := make(map[string]string)
	for rows.Next() {
		var (
			logID, exerciseID, name string
			weight                  sql.NullFloat64
			reps                    sql.NullInt64
		)
		if err := rows.Scan(&logID, &exerciseID, &name, &weight, &reps); err != nil {
			return fmt.Errorf("scan exercise: %w", err)
		}

		i, ok := index[logID]
		if !ok {
			continue
		}
		l := &logs[i]
		if lastExercise[logID] != exerciseID {
			l.Exercises = append(l.Exercises, models.ExerciseEntry{Name: name})
			lastExercise[logID] = exerciseID
		}
		if weight.Valid && reps.Valid {
			ex := &l.Exercises[len(l.Exercises)-1]
			ex.Sets = append(ex.Sets, models.SetEntry{Weight: weight.Float64, Reps: int(reps.Int64)})
		}
	}
	return rows.Err()
}

// LogsOnDay returns the logs whose date falls on the same local calendar day as day.
func (s *Storage) LogsOnDay(ctx context.Context, day time.Time) ([]models.WorkoutLog, error) {
	logs, err := s.ListLogs(ctx)
	if err != nil {
		return nil, err
	}

	key := utils.DayKey(day.Local())
	var out []models.WorkoutLog
	for _, l := range logs {
		if utils.DayKey(l.Date.Local()) == key {
			out = append(out, l)
		}
	}
	return out, nil
}

// GetLog returns the log whose ID equals id or, failing that, the single
// log whose ID starts with it.
func (s *Storage) GetLog(ctx context.Context, id string) (*models.WorkoutLog, error) {
	logs, err := s.ListLogs(ctx)
	if err != nil {
		return nil, err
	}

	var match *models.WorkoutLog
	for i := range logs {
		if logs[i].ID == id {
			return &logs[i], nil
		}
		if strings.HasPrefix(logs[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("workout id prefix %q is ambiguous", id)
			}
			match = &logs[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("workout log %q not found", id)
	}
	return match, nil
}

func (s *Storage) AddBodyStat(ctx context.Context, stat *models.BodyStat) error {
	if stat.ID == "" {
		stat.ID = uuid.New().String()
	}

	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO body_stats (id, date, weight) VALUES (?, ?, ?)",
		stat.ID, stat.Date.Format(time.RFC3339), stat.Weight,
	)
	if err != nil {
		return fmt.Errorf("insert body stat: %w", err)
	}
	return nil
}

// ListBodyStats returns every body-weight sample, newest first.
func (s *Storage) ListBodyStats(ctx context.Context) ([]models.BodyStat, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT id, date, weight FROM body_stats ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("query body stats: %w", err)
	}
	defer rows.Close()

	var stats []models.BodyStat
	for rows.Next() {
		var stat models.BodyStat
		var rawDate string
		if err := rows.Scan(&stat.ID, &rawDate, &stat.Weight); err != nil {
			return nil, fmt.Errorf("scan body stat: %w", err)
		}
		stat.Date, _ = time.Parse(time.RFC3339, rawDate)
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}
