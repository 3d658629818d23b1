package records

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return refNow }

type recordingNotifier struct {
	mu         sync.Mutex
	detections []models.PRDetection
}

func (n *recordingNotifier) NotifyPR(d models.PRDetection) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.detections = append(n.detections, d)
}

type failingStore struct {
	MemoryStore
}

func (s *failingStore) Save(context.Context, *models.RecordsSnapshot) error {
	return errors.New("disk full")
}

func workout(name string, sets ...models.SetEntry) models.WorkoutLog {
	return models.WorkoutLog{
		Date:      refNow,
		Exercises: []models.ExerciseEntry{{Name: name, Sets: sets}},
	}
}

func set(weight float64, reps int) models.SetEntry {
	return models.SetEntry{Weight: weight, Reps: reps}
}

func newTracker(t *testing.T, store Store, notifier Notifier) *Tracker {
	t.Helper()
	tracker, err := NewTracker(context.Background(), store, notifier, fixedNow)
	require.NoError(t, err)
	return tracker
}

func recordTypes(d models.PRDetection) []models.RecordType {
	var types []models.RecordType
	for _, r := range d.Records {
		types = append(types, r.Type)
	}
	return types
}

func TestTracker_FirstLogSetsAllRecords(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)

	detections, err := tracker.DetectPRsFromLog(context.Background(), workout("Bench Press", set(100, 5)))
	require.NoError(t, err)
	require.Len(t, detections, 1)

	d := detections[0]
	assert.Equal(t, "Bench Press", d.Exercise)
	assert.Equal(t, refNow, d.Date)
	assert.Equal(t,
		[]models.RecordType{models.RecordWeight, models.Record1RM, models.RecordReps, models.RecordVolume},
		recordTypes(d),
	)
	assert.Equal(t, 113.0, d.Records[1].NewValue)
	assert.Equal(t, "@ 100kg", d.Records[2].Context)

	rec, ok := tracker.Record("bench press")
	require.True(t, ok)
	assert.Equal(t, 100.0, rec.MaxWeight)
	assert.Equal(t, 113.0, rec.Max1RM)
	assert.Equal(t, 5, rec.MaxReps)
	assert.Equal(t, 500.0, rec.MaxVolume)
	require.NotNil(t, rec.LastUpdated)
	assert.Equal(t, refNow, *rec.LastUpdated)
}

func TestTracker_SecondRunYieldsNothing(t *testing.T) {
	store := NewMemoryStore()
	tracker := newTracker(t, store, nil)
	log := workout("Squat", set(120, 3), set(100, 8))

	first, err := tracker.DetectPRsFromLog(context.Background(), log)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	before := tracker.Snapshot()

	second, err := tracker.DetectPRsFromLog(context.Background(), log)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, before, tracker.Snapshot())
}

func TestTracker_WarmupSetsDoNotCountAsRepRecords(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := tracker.DetectPRsFromLog(ctx, workout("Bench Press", set(100, 5)))
	require.NoError(t, err)

	detections, err := tracker.DetectPRsFromLog(ctx, workout("Bench Press", set(50, 20)))
	require.NoError(t, err)
	require.Len(t, detections, 1)
	assert.Equal(t, []models.RecordType{models.RecordVolume}, recordTypes(detections[0]))

	rec, _ := tracker.Record("Bench Press")
	assert.Equal(t, 5, rec.MaxReps)
	assert.Equal(t, 1000.0, rec.MaxVolume)

	detections, err = tracker.DetectPRsFromLog(ctx, workout("Bench Press", set(80, 8)))
	require.NoError(t, err)
	require.Len(t, detections, 1)
	assert.Equal(t, []models.RecordType{models.RecordReps}, recordTypes(detections[0]))
	assert.Equal(t, 5.0, detections[0].Records[0].OldValue)
	assert.Equal(t, 8.0, detections[0].Records[0].NewValue)
}

func TestTracker_InvalidSetsIgnored(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)

	detections, err := tracker.DetectPRsFromLog(context.Background(),
		workout("Deadlift", set(0, 5), set(180, 0), set(-10, 3)))
	require.NoError(t, err)
	assert.Empty(t, detections)

	rec, ok := tracker.Record("Deadlift")
	require.True(t, ok)
	assert.Zero(t, rec.MaxWeight)
	assert.Zero(t, rec.Max1RM)
	assert.Zero(t, rec.MaxReps)
	assert.Zero(t, rec.MaxVolume)
	assert.Empty(t, tracker.History(0))
}

func TestTracker_NameCollisionSharesRecord(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := tracker.DetectPRsFromLog(ctx, workout("Panca Piana 20kg", set(60, 10)))
	require.NoError(t, err)
	detections, err := tracker.DetectPRsFromLog(ctx, workout("panca piana", set(70, 6)))
	require.NoError(t, err)
	require.Len(t, detections, 1)
	assert.Equal(t, 60.0, detections[0].Records[0].OldValue)

	all := tracker.All()
	require.Len(t, all, 1)
	assert.Equal(t, "panca piana", all[0].Key)
	assert.Equal(t, "panca piana", all[0].DisplayName)
	assert.Equal(t, 70.0, all[0].MaxWeight)
}

func TestTracker_FieldsAreMonotonic(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)
	ctx := context.Background()
	sessions := [][]models.SetEntry{
		{set(60, 12), set(70, 10)},
		{set(40, 20)},
		{set(100, 1)},
		{set(90, 15), set(0, 30)},
		{set(50, 5)},
		{set(95, 6), set(95, 6), set(95, 6)},
	}

	var prev models.PersonalRecordEntry
	for i, sets := range sessions {
		_, err := tracker.DetectPRsFromLog(ctx, workout("Row", sets...))
		require.NoError(t, err)

		rec, ok := tracker.Record("Row")
		require.True(t, ok)
		assert.GreaterOrEqual(t, rec.MaxWeight, prev.MaxWeight, "session %d", i)
		assert.GreaterOrEqual(t, rec.Max1RM, prev.Max1RM, "session %d", i)
		assert.GreaterOrEqual(t, rec.MaxReps, prev.MaxReps, "session %d", i)
		assert.GreaterOrEqual(t, rec.MaxVolume, prev.MaxVolume, "session %d", i)
		prev = rec
	}
	assert.Equal(t, 100.0, prev.MaxWeight)
	assert.Equal(t, 1710.0, prev.MaxVolume)
}

func TestTracker_HistoryIsCappedNewestFirst(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)
	ctx := context.Background()

	for i := 0; i < MaxHistory+5; i++ {
		_, err := tracker.DetectPRsFromLog(ctx, workout(fmt.Sprintf("Exercise %c%c", 'a'+i/26, 'a'+i%26), set(50, 5)))
		require.NoError(t, err)
	}

	snapshot := tracker.Snapshot()
	require.Len(t, snapshot.History, MaxHistory)
	last := MaxHistory + 4
	assert.Equal(t, fmt.Sprintf("Exercise %c%c", 'a'+last/26, 'a'+last%26), snapshot.History[0].Exercise)

	assert.Len(t, tracker.History(0), DefaultHistoryLimit)
	assert.Len(t, tracker.History(500), MaxHistory)
}

func TestTracker_MultipleExercisesInOneLog(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)

	detections, err := tracker.DetectPRsFromLog(context.Background(), models.WorkoutLog{
		Date: refNow,
		Exercises: []models.ExerciseEntry{
			{Name: "Squat", Sets: []models.SetEntry{set(100, 5)}},
			{Name: "", Sets: []models.SetEntry{set(100, 5)}},
			{Name: "Leg Curl", Sets: []models.SetEntry{set(40, 12)}},
		},
	})
	require.NoError(t, err)
	require.Len(t, detections, 2)
	assert.Equal(t, "Squat", detections[0].Exercise)
	assert.Equal(t, "Leg Curl", detections[1].Exercise)

	history := tracker.History(10)
	require.Len(t, history, 2)
	assert.Equal(t, "Leg Curl", history[0].Exercise)
	assert.Equal(t, refNow, history[0].Timestamp)
	assert.Equal(t, []string{"Leg Curl", "Squat"}, tracker.ExerciseNames())
}

func TestTracker_PersistsAndReloads(t *testing.T) {
	store := NewMemoryStore()
	tracker := newTracker(t, store, nil)

	_, err := tracker.DetectPRsFromLog(context.Background(), workout("Overhead Press", set(50, 5)))
	require.NoError(t, err)

	reloaded := newTracker(t, store, nil)
	rec, ok := reloaded.Record("overhead press")
	require.True(t, ok)
	assert.Equal(t, 50.0, rec.MaxWeight)
	assert.Len(t, reloaded.History(0), 1)

	detections, err := reloaded.DetectPRsFromLog(context.Background(), workout("Overhead Press", set(50, 5)))
	require.NoError(t, err)
	assert.Empty(t, detections)
}

func TestTracker_NotifiesEachDetection(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := newTracker(t, NewMemoryStore(), notifier)

	detections, err := tracker.DetectPRsFromLog(context.Background(), models.WorkoutLog{
		Date: refNow,
		Exercises: []models.ExerciseEntry{
			{Name: "Squat", Sets: []models.SetEntry{set(100, 5)}},
			{Name: "Dips", Sets: []models.SetEntry{set(10, 10)}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, detections, notifier.detections)
}

func TestTracker_SaveErrorStillReturnsDetections(t *testing.T) {
	notifier := &recordingNotifier{}
	tracker := newTracker(t, &failingStore{}, notifier)

	detections, err := tracker.DetectPRsFromLog(context.Background(), workout("Squat", set(100, 5)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, detections, 1)
	assert.Len(t, notifier.detections, 1)
}

func TestTracker_ConcurrentDetectionsKeepTheMax(t *testing.T) {
	tracker := newTracker(t, NewMemoryStore(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 30; i++ {
		wg.Add(1)
		go func(w float64) {
			defer wg.Done()
			_, err := tracker.DetectPRsFromLog(ctx, workout("Curl", set(w, 8)))
			assert.NoError(t, err)
		}(float64(i))
	}
	wg.Wait()

	rec, ok := tracker.Record("Curl")
	require.True(t, ok)
	assert.Equal(t, 30.0, rec.MaxWeight)
	assert.Equal(t, 240.0, rec.MaxVolume)
}

func TestTracker_AllOrdersByLastUpdate(t *testing.T) {
	store := NewMemoryStore()
	older := refNow.Add(-time.Hour)
	require.NoError(t, store.Save(context.Background(), &models.RecordsSnapshot{
		Records: map[string]models.PersonalRecordEntry{
			"squat": {DisplayName: "Squat", MaxWeight: 100, LastUpdated: &older},
			"row":   {DisplayName: "Row"},
		},
	}))
	tracker := newTracker(t, store, nil)

	_, err := tracker.DetectPRsFromLog(context.Background(), workout("Bench", set(80, 5)))
	require.NoError(t, err)

	all := tracker.All()
	require.Len(t, all, 3)
	assert.Equal(t, "bench", all[0].Key)
	assert.Equal(t, "squat", all[1].Key)
	assert.Equal(t, "row", all[2].Key)
}

func TestNewTracker_LoadError(t *testing.T) {
	_, err := NewTracker(context.Background(), loadErrStore{}, nil, fixedNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load records")
}

type loadErrStore struct{}

func (loadErrStore) Load(context.Context) (*models.RecordsSnapshot, error) {
	return nil, errors.New("boom")
}

func (loadErrStore) Save(context.Context, *models.RecordsSnapshot) error { return nil }
