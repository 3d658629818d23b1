package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// LogExists reports whether a log with this ID was already saved.
func (s *Storage) LogExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM workout_logs WHERE id = ?)",
		id,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check workout log existence: %w", err)
	}

	return exists, nil
}

