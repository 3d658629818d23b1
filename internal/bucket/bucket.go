package bucket

import (
	"time"

	"github.com/misterclayt0n/ironflow/internal/utils"
)

const DefaultDays = 14

// Buckets holds the items of the two comparison windows.
type Buckets[T any] struct {
	Recent   []T
	Previous []T
}

// All returns recent followed by previous items.
func (b Buckets[T]) All() []T {
	all := make([]T, 0, len(b.Recent)+len(b.Previous))
	all = append(all, b.Recent...)
	return append(all, b.Previous...)
}

// Split partitions items into the window of the last `days` days and the
// window before it, relative to now. Items without a date, or older than
// two windows, are dropped. days <= 0 falls back to DefaultDays.
func Split[T any](items []T, dateOf func(T) time.Time, now time.Time, days int) Buckets[T] {
	if days <= 0 {
		days = DefaultDays
	}
	window := time.Duration(days) * utils.Day
	recentCutoff := now.Add(-window)
	prevCutoff := now.Add(-2 * window)

	var b Buckets[T]
	for _, item := range items {
		t := dateOf(item)
		if t.IsZero() {
			continue
		}
		switch {
		case t.After(recentCutoff):
			b.Recent = append(b.Recent, item)
		case t.After(prevCutoff):
			b.Previous = append(b.Previous, item)
		}
	}
	return b
}
