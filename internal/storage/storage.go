package storage

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the libsql database at url and makes sure the schema exists.
func NewStorage(ctx context.Context, url string) (*Storage, error) {
	if url == "" {
		return nil, fmt.Errorf("no database configured: set TURSO_DATABASE_URL, [database] connection_string, or DEV_MODE=true")
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := initializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	log.Debugf("storage: connected")
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS workout_logs (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            notes TEXT,
            wellness TEXT
        );

        CREATE TABLE IF NOT EXISTS log_exercises (
            id TEXT PRIMARY KEY,
            log_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            name TEXT NOT NULL,
            FOREIGN KEY (log_id) REFERENCES workout_logs(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS log_sets (
            id TEXT PRIMARY KEY,
            log_exercise_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            weight REAL NOT NULL,
            reps INTEGER NOT NULL,
            FOREIGN KEY (log_exercise_id) REFERENCES log_exercises(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS body_stats (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            weight REAL NOT NULL
        );

        CREATE TABLE IF NOT EXISTS personal_records (
            key TEXT PRIMARY KEY,
            display_name TEXT NOT NULL,
            max_weight REAL NOT NULL,
            max_1rm REAL NOT NULL,
            max_reps INTEGER NOT NULL,
            max_volume REAL NOT NULL,
            last_updated TEXT
        );

        CREATE TABLE IF NOT EXISTS pr_history (
            position INTEGER PRIMARY KEY,
            exercise TEXT NOT NULL,
            date TEXT NOT NULL,
            records TEXT NOT NULL,
            timestamp TEXT NOT NULL
        );
    `)
	return err
}
