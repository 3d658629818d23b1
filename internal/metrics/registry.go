package metrics

import (
	"fmt"
	"math"
)

// Kind enumerates the metrics the trend engine knows how to compare.
type Kind string

const (
	Frequency     Kind = "frequency"
	Volume        Kind = "volume"
	BodyWeight    Kind = "bodyWeight"
	PRs           Kind = "prs"
	Consistency   Kind = "consistency"
	SleepQuality  Kind = "sleepQuality"
	EnergyLevel   Kind = "energyLevel"
	StressLevel   Kind = "stressLevel"
	SorenessLevel Kind = "sorenessLevel"
)

// Unit only affects display strings. Values are always kilograms internally.
type Unit string

const (
	Metric   Unit = "metric"
	Imperial Unit = "imperial"
)

const kgToLbs = 2.20462

// ParseUnit treats anything but "imperial" as metric.
func ParseUnit(s string) Unit {
	if Unit(s) == Imperial {
		return Imperial
	}
	return Metric
}

func (u Unit) WeightLabel() string {
	if u == Imperial {
		return "lbs"
	}
	return "kg"
}

// Weight converts a kilogram value to the display unit.
func (u Unit) Weight(kg float64) float64 {
	if u == Imperial {
		return kg * kgToLbs
	}
	return kg
}

type Definition struct {
	Kind           Kind
	Label          string
	HigherIsBetter bool
	Format         func(value float64, unit Unit) string
}

func formatScale(value float64, _ Unit) string {
	return fmt.Sprintf("%.1f / 10", value)
}

var registry = map[Kind]Definition{
	Frequency: {
		Kind:           Frequency,
		Label:          "Training Frequency",
		HigherIsBetter: true,
		Format: func(value float64, _ Unit) string {
			return fmt.Sprintf("%.1f sessions/week", value)
		},
	},
	Volume: {
		Kind:           Volume,
		Label:          "Average Volume",
		HigherIsBetter: true,
		Format: func(value float64, unit Unit) string {
			return fmt.Sprintf("%.0f %s", math.Round(unit.Weight(value)), unit.WeightLabel())
		},
	},
	// Polarity of body weight depends on the profile goal, see trend.EvalTrendDirection.
	BodyWeight: {
		Kind:  BodyWeight,
		Label: "Body Weight",
		Format: func(value float64, unit Unit) string {
			return fmt.Sprintf("%.1f %s", unit.Weight(value), unit.WeightLabel())
		},
	},
	PRs: {
		Kind:           PRs,
		Label:          "PR Progression",
		HigherIsBetter: true,
		Format: func(value float64, unit Unit) string {
			return fmt.Sprintf("%.1f %s", unit.Weight(value), unit.WeightLabel())
		},
	},
	Consistency: {
		Kind:           Consistency,
		Label:          "Consistency",
		HigherIsBetter: true,
		Format: func(value float64, _ Unit) string {
			return fmt.Sprintf("%.0f%%", math.Round(value*100))
		},
	},
	SleepQuality:  {Kind: SleepQuality, Label: "Sleep Quality", HigherIsBetter: true, Format: formatScale},
	EnergyLevel:   {Kind: EnergyLevel, Label: "Daily Energy", HigherIsBetter: true, Format: formatScale},
	StressLevel:   {Kind: StressLevel, Label: "Stress", HigherIsBetter: false, Format: formatScale},
	SorenessLevel: {Kind: SorenessLevel, Label: "DOMS / Soreness", HigherIsBetter: false, Format: formatScale},
}

// Core lists the metrics that are always reported, in display order.
var Core = []Kind{Frequency, Volume, BodyWeight, PRs, Consistency}

// Wellness lists the self-reported metrics, shown only when data exists.
var Wellness = []Kind{SleepQuality, EnergyLevel, StressLevel, SorenessLevel}

// Lookup returns the definition of kind. Unknown kinds get a neutral definition
// labelled with the raw id.
func Lookup(kind Kind) Definition {
	if def, ok := registry[kind]; ok {
		return def
	}
	return Definition{
		Kind:  kind,
		Label: string(kind),
		Format: func(value float64, _ Unit) string {
			return fmt.Sprintf("%.1f", value)
		},
	}
}
