package records

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const similarityThreshold = 0.85

// Matcher maps freshly typed exercise names onto names the user already has,
// so "bench press" and "Bench Presss" end up in the same record.
type Matcher struct {
	existing []string
}

func NewMatcher(existing []string) *Matcher {
	return &Matcher{existing: existing}
}

// Match returns the existing name equal to name after normalization, or the
// most similar one above the threshold, or name itself.
func (m *Matcher) Match(name string) string {
	if name == "" {
		return name
	}

	normalized := normalizeForMatch(name)
	for _, existing := range m.existing {
		if normalizeForMatch(existing) == normalized {
			return existing
		}
	}

	best, bestScore := "", 0.0
	for _, existing := range m.existing {
		score := Similarity(normalized, normalizeForMatch(existing))
		if score > similarityThreshold && score > bestScore {
			best, bestScore = existing, score
		}
	}
	if best != "" {
		return best
	}
	return name
}

var dice = &metrics.SorensenDice{NgramSize: 2}

// Similarity is the Sørensen-Dice coefficient over the character bigrams of a and b.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	return strutil.Similarity(a, b, dice)
}
