package records

import (
	"context"
	"sync"

	"github.com/misterclayt0n/ironflow/internal/models"
)

// Store persists the tracker state. Load is called once on construction,
// Save after every detection that produced records.
type Store interface {
	Load(ctx context.Context) (*models.RecordsSnapshot, error)
	Save(ctx context.Context, snapshot *models.RecordsSnapshot) error
}

// Notifier delivers a detection to the user. How is up to the implementation.
type Notifier interface {
	NotifyPR(detection models.PRDetection)
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the snapshot in process, used for dry runs and tests.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot *models.RecordsSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*models.RecordsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return nil, nil
	}
	return copySnapshot(s.snapshot), nil
}

func (s *MemoryStore) Save(_ context.Context, snapshot *models.RecordsSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = copySnapshot(snapshot)
	return nil
}

func copySnapshot(in *models.RecordsSnapshot) *models.RecordsSnapshot {
	out := &models.RecordsSnapshot{
		Records: make(map[string]models.PersonalRecordEntry, len(in.Records)),
		History: make([]models.PRHistoryEntry, len(in.History)),
	}
	for k, v := range in.Records {
		out.Records[k] = v
	}
	copy(out.History, in.History)
	return out
}
