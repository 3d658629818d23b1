package models

import "time"

// RecordType identifies which dimension of a personal record was beaten.
type RecordType string

const (
	RecordWeight RecordType = "weight"
	Record1RM    RecordType = "1rm"
	RecordReps   RecordType = "reps"
	RecordVolume RecordType = "volume"
)

// PersonalRecordEntry holds the best values seen for one normalized exercise key.
// Every numeric field only ever increases.
type PersonalRecordEntry struct {
	DisplayName string     `json:"displayName" toml:"display_name"`
	MaxWeight   float64    `json:"maxWeight" toml:"max_weight"`
	Max1RM      float64    `json:"max1RM" toml:"max_1rm"`
	MaxVolume   float64    `json:"maxVolume" toml:"max_volume"`
	MaxReps     int        `json:"maxReps" toml:"max_reps"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty" toml:"last_updated,omitempty"`
}

type RecordChange struct {
	Type     RecordType `json:"type" toml:"type"`
	Label    string     `json:"label" toml:"label"`
	OldValue float64    `json:"oldValue" toml:"old_value"`
	NewValue float64    `json:"newValue" toml:"new_value"`
	Unit     string     `json:"unit" toml:"unit"`
	Context  string     `json:"context,omitempty" toml:"context,omitempty"`
}

// PRDetection is what DetectPRsFromLog reports for one exercise of a log.
type PRDetection struct {
	Exercise string         `json:"exercise" toml:"exercise"`
	Date     time.Time      `json:"date" toml:"date"`
	Records  []RecordChange `json:"records" toml:"record"`
}

// PRHistoryEntry is the audit copy of a detection, stamped with when it was detected.
type PRHistoryEntry struct {
	Exercise  string         `json:"exercise" toml:"exercise"`
	Date      time.Time      `json:"date" toml:"date"`
	Records   []RecordChange `json:"records" toml:"record"`
	Timestamp time.Time      `json:"timestamp" toml:"timestamp"`
}

// RecordsSnapshot is the persisted state of the PR tracker.
type RecordsSnapshot struct {
	Records map[string]PersonalRecordEntry `json:"records" toml:"records"`
	History []PRHistoryEntry               `json:"history" toml:"history"`
}
