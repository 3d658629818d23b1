package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Polarity(t *testing.T) {
	assert.True(t, Lookup(Volume).HigherIsBetter)
	assert.True(t, Lookup(SleepQuality).HigherIsBetter)
	assert.False(t, Lookup(StressLevel).HigherIsBetter)
	assert.False(t, Lookup(SorenessLevel).HigherIsBetter)
}

func TestLookup_Unknown(t *testing.T) {
	def := Lookup(Kind("mystery"))
	assert.Equal(t, "mystery", def.Label)
	assert.Equal(t, "2.5", def.Format(2.5, Metric))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		kind  Kind
		value float64
		unit  Unit
		want  string
	}{
		{Frequency, 3.5, Metric, "3.5 sessions/week"},
		{Volume, 1234.4, Metric, "1234 kg"},
		{Volume, 100, Imperial, "220 lbs"},
		{BodyWeight, 80, Metric, "80.0 kg"},
		{BodyWeight, 80, Imperial, "176.4 lbs"},
		{PRs, 100, Imperial, "220.5 lbs"},
		{Consistency, 0.756, Metric, "76%"},
		{StressLevel, 4.25, Metric, "4.2 / 10"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.kind).Format(tt.value, tt.unit))
		})
	}
}

func TestParseUnit(t *testing.T) {
	assert.Equal(t, Imperial, ParseUnit("imperial"))
	assert.Equal(t, Metric, ParseUnit("metric"))
	assert.Equal(t, Metric, ParseUnit(""))
	assert.Equal(t, "lbs", Imperial.WeightLabel())
}
