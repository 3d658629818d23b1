package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/misterclayt0n/ironflow/internal/utils"
)

// Dump is the portable TOML form of everything ironflow stores.
type Dump struct {
	Workouts  []models.WorkoutLog    `toml:"workout"`
	BodyStats []models.BodyStat      `toml:"bodystat"`
	Records   models.RecordsSnapshot `toml:"records"`
}

// WriteDump encodes dump as TOML, workouts and body stats oldest first.
func WriteDump(w io.Writer, dump *Dump) error {
	sort.SliceStable(dump.Workouts, func(i, j int) bool {
		return dump.Workouts[i].Date.Before(dump.Workouts[j].Date)
	})
	sort.SliceStable(dump.BodyStats, func(i, j int) bool {
		return dump.BodyStats[i].Date.Before(dump.BodyStats[j].Date)
	})

	if err := toml.NewEncoder(w).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

func ReadDump(r io.Reader) (*Dump, error) {
	var dump Dump
	if _, err := toml.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}
	if dump.Records.Records == nil {
		dump.Records.Records = make(map[string]models.PersonalRecordEntry)
	}
	return &dump, nil
}

// Export writes every log and body stat, plus the records held by store, to outputPath.
func (s *Storage) Export(ctx context.Context, outputPath string, store records.Store) error {
	logs, err := s.ListLogs(ctx)
	if err != nil {
		return err
	}
	stats, err := s.ListBodyStats(ctx)
	if err != nil {
		return err
	}
	snapshot, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil {
		snapshot = &models.RecordsSnapshot{}
	}

	var sb strings.Builder
	if err := WriteDump(&sb, &Dump{Workouts: logs, BodyStats: stats, Records: *snapshot}); err != nil {
		return err
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// GetDBExportPath returns ~/.config/ironflow/db_dump.toml.
func GetDBExportPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// Import rebuilds the database from a dump file: every table is cleared,
// then refilled from the dump. Records go to store.
func (s *Storage) Import(ctx context.Context, filePath string, store records.Store) (*Dump, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filePath, err)
	}
	defer f.Close()

	dump, err := ReadDump(f)
	if err != nil {
		return nil, err
	}

	for _, table := range []string{"log_sets", "log_exercises", "workout_logs", "body_stats"} {
		if _, err := s.DB.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return nil, fmt.Errorf("clearing table %s: %w", table, err)
		}
	}

	for i := range dump.Workouts {
		if err := s.SaveLog(ctx, &dump.Workouts[i]); err != nil {
			return nil, err
		}
	}
	for i := range dump.BodyStats {
		if err := s.AddBodyStat(ctx, &dump.BodyStats[i]); err != nil {
			return nil, err
		}
	}
	if err := store.Save(ctx, &dump.Records); err != nil {
		return nil, err
	}
	return dump, nil
}
