package notify

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	color.NoColor = true
	goleak.VerifyTestMain(m)
}

func detection(exercise string, records ...models.RecordChange) models.PRDetection {
	return models.PRDetection{
		Exercise: exercise,
		Date:     time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
		Records:  records,
	}
}

var (
	weightPR = models.RecordChange{Type: models.RecordWeight, Label: "💪 Max Weight", OldValue: 100, NewValue: 105, Unit: "kg"}
	firstPR  = models.RecordChange{Type: models.RecordWeight, Label: "💪 Max Weight", OldValue: 0, NewValue: 60, Unit: "kg"}
	repsPR   = models.RecordChange{Type: models.RecordReps, Label: "🔥 Max Reps", OldValue: 5, NewValue: 8, Unit: "reps", Context: "@ 80kg"}
	volumePR = models.RecordChange{Type: models.RecordVolume, Label: "📊 Max Volume", OldValue: 500, NewValue: 640, Unit: "kg"}
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		detection models.PRDetection
		wantTitle string
		wantBody  string
	}{
		{
			name:      "improvement",
			detection: detection("Squat", weightPR),
			wantTitle: "🏆 NEW PR: Squat",
			wantBody:  "💪 Max Weight: 105kg (+5.0kg)",
		},
		{
			name:      "first sighting has no delta",
			detection: detection("Row", firstPR),
			wantTitle: "🏆 NEW PR: Row",
			wantBody:  "💪 Max Weight: 60kg",
		},
		{
			name:      "reps with context and one more",
			detection: detection("Bench", repsPR, volumePR),
			wantTitle: "🏆 NEW PR: Bench",
			wantBody:  "🔥 Max Reps: 8 reps (+3.0 reps) @ 80kg, +1 more record",
		},
		{
			name:      "several more",
			detection: detection("Bench", weightPR, repsPR, volumePR),
			wantTitle: "🏆 NEW PR: Bench",
			wantBody:  "💪 Max Weight: 105kg (+5.0kg), +2 more records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := Format(tt.detection)
			require.True(t, ok)
			assert.Equal(t, tt.wantTitle, msg.Title)
			assert.Equal(t, tt.wantBody, msg.Body)
		})
	}

	_, ok := Format(detection("Empty"))
	assert.False(t, ok)
}

func TestFromHistory(t *testing.T) {
	d := detection("Squat", weightPR)
	h := models.PRHistoryEntry{
		Exercise:  d.Exercise,
		Date:      d.Date,
		Records:   d.Records,
		Timestamp: d.Date.Add(time.Hour),
	}

	assert.Equal(t, d, FromHistory(h))
}

func TestConsole_NotifyPR(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.NotifyPR(detection("Squat", weightPR))
	console.NotifyPR(detection("Nothing"))

	assert.Equal(t, "🏆 NEW PR: Squat\n  💪 Max Weight: 105kg (+5.0kg)\n", buf.String())
}

func TestHub_PublishSubscribe(t *testing.T) {
	hub := NewHub[int]()
	a, cancelA := hub.Subscribe(4)
	b, cancelB := hub.Subscribe(1)

	assert.Equal(t, 2, hub.Publish(1))
	// b is full now
	assert.Equal(t, 1, hub.Publish(2))

	assert.Equal(t, 1, <-a)
	assert.Equal(t, 2, <-a)
	assert.Equal(t, 1, <-b)

	cancelB()
	cancelB()
	_, open := <-b
	assert.False(t, open)
	assert.Equal(t, 1, hub.Publish(3))
	assert.Equal(t, 3, <-a)

	hub.Close()
	hub.Close()
	_, open = <-a
	assert.False(t, open)
	cancelA()

	assert.Equal(t, 0, hub.Publish(4))
	late, _ := hub.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestHub_ConcurrentPublish(t *testing.T) {
	hub := NewHub[int]()
	ch, cancel := hub.Subscribe(100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				hub.Publish(base*10 + j)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, ch, 100)
	cancel()
}

func TestBroadcast_Summary(t *testing.T) {
	hub := NewHub[models.PRDetection]()
	ch, _ := hub.Subscribe(16)
	summary := Collect(ch)

	var buf bytes.Buffer
	notifier := Multi{NewConsole(&buf), NewBroadcast(hub)}
	notifier.NotifyPR(detection("Squat", weightPR, volumePR))
	notifier.NotifyPR(detection("Bench", repsPR))
	notifier.NotifyPR(detection("Squat", weightPR))

	hub.Close()
	records, exercises := summary.Wait()
	assert.Equal(t, 4, records)
	assert.Equal(t, 2, exercises)
	assert.Contains(t, buf.String(), "NEW PR: Bench")
}

func TestHub_Deliver(t *testing.T) {
	hub := NewHub[int]()
	ch, cancel := hub.Subscribe(1)
	defer cancel()

	assert.Equal(t, 1, hub.Deliver(context.Background(), 1))
	// buffer is full, Publish drops while Deliver waits for ctx
	assert.Equal(t, 0, hub.Publish(2))

	ctx, stop := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer stop()
	assert.Equal(t, 0, hub.Deliver(ctx, 3))

	assert.Equal(t, 1, <-ch)
	assert.Len(t, ch, 0)
}

func TestReliableBroadcast_NoDetectionLost(t *testing.T) {
	hub := NewHub[models.PRDetection]()
	ch, _ := hub.Subscribe(1)
	summary := Collect(ch)

	notifier := NewReliableBroadcast(context.Background(), hub)
	for i := 0; i < 500; i++ {
		notifier.NotifyPR(detection("Squat", weightPR, volumePR))
	}

	hub.Close()
	records, exercises := summary.Wait()
	assert.Equal(t, 1000, records)
	assert.Equal(t, 1, exercises)
}

func TestBroadcast_NoSubscribers(t *testing.T) {
	hub := NewHub[models.PRDetection]()
	assert.NotPanics(t, func() {
		NewBroadcast(hub).NotifyPR(detection("Squat", weightPR))
	})
}
