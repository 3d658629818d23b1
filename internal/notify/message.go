package notify

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/ironflow/internal/models"
)

// Message is what the user sees for one detection.
type Message struct {
	Title string
	Body  string
}

// Format builds the message for a detection from its first record. The
// improvement is shown only when there was a previous value to beat.
func Format(d models.PRDetection) (Message, bool) {
	if len(d.Records) == 0 {
		return Message{}, false
	}

	main := d.Records[0]
	body := fmt.Sprintf("%s: %s", main.Label, formatValue(main.NewValue, main.Unit))
	if main.OldValue > 0 {
		body += fmt.Sprintf(" (+%.1f%s)", main.NewValue-main.OldValue, unitSuffix(main.Unit))
	}
	if main.Context != "" {
		body += " " + main.Context
	}
	if extra := len(d.Records) - 1; extra > 0 {
		noun := "records"
		if extra == 1 {
			noun = "record"
		}
		body += fmt.Sprintf(", +%d more %s", extra, noun)
	}

	return Message{
		Title: "🏆 NEW PR: " + d.Exercise,
		Body:  body,
	}, true
}

func formatValue(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unitSuffix(unit)
}

func unitSuffix(unit string) string {
	if unit == "" || unit == "kg" || unit == "lbs" {
		return unit
	}
	return " " + unit
}

// FromHistory turns a stored history entry back into the detection it recorded.
func FromHistory(h models.PRHistoryEntry) models.PRDetection {
	return models.PRDetection{
		Exercise: h.Exercise,
		Date:     h.Date,
		Records:  h.Records,
	}
}
