package records

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	log "github.com/sirupsen/logrus"
)

const (
	MaxHistory          = 100
	DefaultHistoryLimit = 20

	// A rep record only counts at or above this share of the max weight,
	// so light warm-up sets never register.
	repRecordMinLoad = 0.7
)

// Tracker keeps personal records per normalized exercise key and detects
// new ones as logs arrive. Calls are serialized: record fields are
// monotonic accumulators and concurrent updates would lose records.
type Tracker struct {
	mu       sync.Mutex
	store    Store
	notifier Notifier
	now      func() time.Time

	records map[string]models.PersonalRecordEntry
	history []models.PRHistoryEntry
}

// NewTracker loads the persisted state from store. notifier may be nil.
func NewTracker(ctx context.Context, store Store, notifier Notifier, now func() time.Time) (*Tracker, error) {
	if now == nil {
		now = time.Now
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	t := &Tracker{
		store:    store,
		notifier: notifier,
		now:      now,
		records:  make(map[string]models.PersonalRecordEntry),
	}
	if snapshot != nil {
		for k, v := range snapshot.Records {
			t.records[k] = v
		}
		t.history = append(t.history, snapshot.History...)
	}
	if len(t.history) > MaxHistory {
		t.history = t.history[:MaxHistory]
	}

	log.Debugf("pr tracker: loaded %d records, %d history entries", len(t.records), len(t.history))
	return t, nil
}

// DetectPRsFromLog compares every set of the log against the stored records,
// raises the records that were beaten and returns one detection per exercise
// with at least one new record. The updated state is saved and each
// detection is handed to the notifier. Running it twice on the same log
// yields nothing the second time.
func (t *Tracker) DetectPRsFromLog(ctx context.Context, workout models.WorkoutLog) ([]models.PRDetection, error) {
	detections, err := t.detectAndSave(ctx, workout)

	if t.notifier != nil {
		for _, d := range detections {
			t.notifier.NotifyPR(d)
		}
	}
	return detections, err
}

func (t *Tracker) detectAndSave(ctx context.Context, workout models.WorkoutLog) ([]models.PRDetection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	var detections []models.PRDetection
	for _, ex := range workout.Exercises {
		name := strings.TrimSpace(ex.Name)
		if name == "" {
			continue
		}
		key := NormalizeKey(name)
		if key == "" {
			log.Debugf("pr tracker: exercise name [%s] normalizes to nothing, skipping", name)
			continue
		}

		entry, ok := t.records[key]
		if !ok {
			entry = models.PersonalRecordEntry{DisplayName: name}
		}

		changes := checkExercise(&entry, ex)
		if len(changes) > 0 {
			entry.LastUpdated = &now
			entry.DisplayName = name
			detections = append(detections, models.PRDetection{
				Exercise: name,
				Date:     workout.Date,
				Records:  changes,
			})
		}
		t.records[key] = entry
	}

	if len(detections) == 0 {
		return nil, nil
	}

	// newest first, like the detections themselves were pushed one by one
	added := make([]models.PRHistoryEntry, 0, len(detections))
	for i := len(detections) - 1; i >= 0; i-- {
		d := detections[i]
		added = append(added, models.PRHistoryEntry{
			Exercise:  d.Exercise,
			Date:      d.Date,
			Records:   d.Records,
			Timestamp: now,
		})
	}
	t.history = append(added, t.history...)
	if len(t.history) > MaxHistory {
		t.history = t.history[:MaxHistory]
	}

	if err := t.store.Save(ctx, t.snapshotLocked()); err != nil {
		return detections, fmt.Errorf("save records: %w", err)
	}
	return detections, nil
}

// checkExercise raises entry in place and returns the records beaten.
func checkExercise(entry *models.PersonalRecordEntry, ex models.ExerciseEntry) []models.RecordChange {
	var changes []models.RecordChange
	for _, set := range ex.Sets {
		if !set.Valid() {
			continue
		}

		if set.Weight > entry.MaxWeight {
			changes = append(changes, models.RecordChange{
				Type:     models.RecordWeight,
				Label:    "💪 Max Weight",
				OldValue: entry.MaxWeight,
				NewValue: set.Weight,
				Unit:     "kg",
			})
			entry.MaxWeight = set.Weight
		}

		oneRM := utils.CalculateBrzycki1RM(set.Weight, set.Reps)
		if oneRM > entry.Max1RM {
			changes = append(changes, models.RecordChange{
				Type:     models.Record1RM,
				Label:    "🎯 Estimated 1RM",
				OldValue: entry.Max1RM,
				NewValue: oneRM,
				Unit:     "kg",
			})
			entry.Max1RM = oneRM
		}

		// compared against the max weight as raised by this very set
		if entry.MaxWeight > 0 && set.Weight >= entry.MaxWeight*repRecordMinLoad && set.Reps > entry.MaxReps {
			changes = append(changes, models.RecordChange{
				Type:     models.RecordReps,
				Label:    "🔥 Max Reps",
				OldValue: float64(entry.MaxReps),
				NewValue: float64(set.Reps),
				Unit:     "reps",
				Context:  "@ " + strconv.FormatFloat(set.Weight, 'f', -1, 64) + "kg",
			})
			entry.MaxReps = set.Reps
		}
	}

	volume := math.Round(ex.Volume())
	if volume > entry.MaxVolume {
		changes = append(changes, models.RecordChange{
			Type:     models.RecordVolume,
			Label:    "📊 Max Volume",
			OldValue: entry.MaxVolume,
			NewValue: volume,
			Unit:     "kg",
		})
		entry.MaxVolume = volume
	}
	return changes
}

func (t *Tracker) snapshotLocked() *models.RecordsSnapshot {
	return copySnapshot(&models.RecordsSnapshot{
		Records: t.records,
		History: t.history,
	})
}

// Snapshot returns a copy of the current records and history.
func (t *Tracker) Snapshot() *models.RecordsSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked()
}

// Record returns the record stored for the exercise, looked up by normalized name.
func (t *Tracker) Record(exerciseName string) (models.PersonalRecordEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.records[NormalizeKey(exerciseName)]
	return entry, ok
}

type KeyedRecord struct {
	Key string
	models.PersonalRecordEntry
}

// All returns every record, most recently updated first.
func (t *Tracker) All() []KeyedRecord {
	t.mu.Lock()
	all := make([]KeyedRecord, 0, len(t.records))
	for k, v := range t.records {
		all = append(all, KeyedRecord{Key: k, PersonalRecordEntry: v})
	}
	t.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].LastUpdated, all[j].LastUpdated
		switch {
		case a == nil && b == nil:
			return all[i].Key < all[j].Key
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return all[i].Key < all[j].Key
		default:
			return a.After(*b)
		}
	})
	return all
}

// History returns the latest limit detections, newest first.
func (t *Tracker) History(limit int) []models.PRHistoryEntry {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if limit > len(t.history) {
		limit = len(t.history)
	}
	out := make([]models.PRHistoryEntry, limit)
	copy(out, t.history[:limit])
	return out
}

// ExerciseNames lists the display names of all known exercises, sorted.
func (t *Tracker) ExerciseNames() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.records))
	for _, r := range t.records {
		if r.DisplayName != "" {
			names = append(names, r.DisplayName)
		}
	}
	sort.Strings(names)
	return names
}
