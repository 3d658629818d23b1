package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBrzycki1RM(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"single rep is the max", 140, 1, 140},
		{"ten reps", 100, 10, 133},
		{"five reps rounds half up", 100, 5, 113},
		{"twelve reps still extrapolated", 60, 12, 86},
		{"above twelve reps not extrapolated", 100, 15, 100},
		{"zero weight", 0, 5, 0},
		{"zero reps", 100, 0, 0},
		{"negative weight", -20, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateBrzycki1RM(tt.weight, tt.reps))
		})
	}
}

func TestCalculateEpley1RM(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"single rep", 100, 1, 103.333},
		{"ten reps", 100, 10, 133.333},
		{"thirty reps doubles", 50, 30, 100},
		{"invalid", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateEpley1RM(tt.weight, tt.reps), 0.001)
		})
	}
}
