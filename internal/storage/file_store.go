package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/misterclayt0n/ironflow/internal/utils"
)

var _ records.Store = (*FileStore)(nil)

// FileStore keeps the PR tracker state in a single TOML file, for use
// without a database.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultRecordsPath returns ~/.config/ironflow/records.toml.
func DefaultRecordsPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "records.toml"), nil
}

func (f *FileStore) Load(_ context.Context) (*models.RecordsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var snapshot models.RecordsSnapshot
	if _, err := toml.DecodeFile(f.path, &snapshot); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return &snapshot, nil
}

// Save writes a temp file next to the target and renames it over the old one.
func (f *FileStore) Save(_ context.Context, snapshot *models.RecordsSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".records-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(snapshot); err != nil {
		tmp.Close()
		return fmt.Errorf("encode records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
