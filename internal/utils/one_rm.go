package utils

import "math"

// CalculateEpley1RM is the cheap estimator used for trend snapshots.
func CalculateEpley1RM(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}

	return weight * (1 + float64(reps)/30)
}

// Above this many reps the Brzycki regression stops being trustworthy.
const brzyckiMaxReps = 12

// CalculateBrzycki1RM estimates a one-rep max for record keeping.
// A single rep is the max itself, and sets above 12 reps are not extrapolated.
func CalculateBrzycki1RM(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 || reps > brzyckiMaxReps {
		return weight
	}

	return math.Round(weight * (36 / float64(37-reps)))
}
