package utils

import (
	"strings"
	"time"
)

const (
	DayLayout = "2006-01-02"
	Day       = 24 * time.Hour
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	DayLayout,
	"02/01/06",
}

// ParseDate accepts the date formats users type into workout files and flags.
// The second return value is false for anything unparsable.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey is the calendar day of t, used to count distinct training days.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// DaysBetween returns whole days elapsed from then to now, never negative.
func DaysBetween(then, now time.Time) int {
	if now.Before(then) {
		return 0
	}
	return int(now.Sub(then) / Day)
}
