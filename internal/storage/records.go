package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/records"
)

var _ records.Store = (*Storage)(nil)

// Load reads the whole record map and PR history. An empty database yields
// an empty snapshot.
func (s *Storage) Load(ctx context.Context) (*models.RecordsSnapshot, error) {
	snapshot := &models.RecordsSnapshot{
		Records: make(map[string]models.PersonalRecordEntry),
	}

	rows, err := s.DB.QueryContext(ctx, `
        SELECT key, display_name, max_weight, max_1rm, max_reps, max_volume, last_updated
        FROM personal_records
    `)
	if err != nil {
		return nil, fmt.Errorf("query personal records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key         string
			entry       models.PersonalRecordEntry
			lastUpdated sql.NullString
		)
		if err := rows.Scan(&key, &entry.DisplayName, &entry.MaxWeight, &entry.Max1RM,
			&entry.MaxReps, &entry.MaxVolume, &lastUpdated); err != nil {
			return nil, fmt.Errorf("scan personal record: %w", err)
		}
		if lastUpdated.Valid {
			if t, err := time.Parse(time.RFC3339, lastUpdated.String); err == nil {
				entry.LastUpdated = &t
			}
		}
		snapshot.Records[key] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate personal records: %w", err)
	}

	history, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.History = history
	return snapshot, nil
}

func (s *Storage) loadHistory(ctx context.Context) ([]models.PRHistoryEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT exercise, date, records, timestamp
        FROM pr_history
        ORDER BY position ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("query pr history: %w", err)
	}
	defer rows.Close()

	var history []models.PRHistoryEntry
	for rows.Next() {
		var (
			h                             models.PRHistoryEntry
			rawDate, rawRecords, rawStamp string
		)
		if err := rows.Scan(&h.Exercise, &rawDate, &rawRecords, &rawStamp); err != nil {
			return nil, fmt.Errorf("scan pr history: %w", err)
		}
		h.Date, _ = time.Parse(time.RFC3339, rawDate)
		h.Timestamp, _ = time.Parse(time.RFC3339, rawStamp)
		if err := json.Unmarshal([]byte(rawRecords), &h.Records); err != nil {
			return nil, fmt.Errorf("decode pr history records: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// Save replaces the stored records and history with snapshot in one transaction.
func (s *Storage) Save(ctx context.Context, snapshot *models.RecordsSnapshot) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM personal_records"); err != nil {
		return fmt.Errorf("clear personal records: %w", err)
	}
	for key, entry := range snapshot.Records {
		var lastUpdated sql.NullString
		if entry.LastUpdated != nil {
			lastUpdated = sql.NullString{String: entry.LastUpdated.Format(time.RFC3339), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO personal_records
                (key, display_name, max_weight, max_1rm, max_reps, max_volume, last_updated)
                VALUES (?, ?, ?, ?, ?, ?, ?)`,
			key, entry.DisplayName, entry.MaxWeight, entry.Max1RM, entry.MaxReps, entry.MaxVolume, lastUpdated,
		); err != nil {
			return fmt.Errorf("insert personal record %s: %w", key, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM pr_history"); err != nil {
		return fmt.Errorf("clear pr history: %w", err)
	}
	for i, h := range snapshot.History {
		raw, err := json.Marshal(h.Records)
		if err != nil {
			return fmt.Errorf("encode pr history records: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO pr_history (position, exercise, date, records, timestamp) VALUES (?, ?, ?, ?, ?)",
			i, h.Exercise, h.Date.Format(time.RFC3339), string(raw), h.Timestamp.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("insert pr history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit records: %w", err)
	}
	return nil
}
