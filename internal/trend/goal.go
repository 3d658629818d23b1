package trend

import (
	"strings"

	"github.com/misterclayt0n/ironflow/internal/models"
)

// GoalDirection is the body weight direction the user is aiming for.
type GoalDirection string

const (
	GoalDown    GoalDirection = "down"
	GoalUp      GoalDirection = "up"
	GoalNeutral GoalDirection = "neutral"
)

// Keywords are matched as substrings, so "definizione" hits "definiz".
var (
	cutKeywords  = []string{"cut", "deficit", "lean", "lose", "loss", "perdita", "definiz", "dimagr"}
	bulkKeywords = []string{"bulk", "massa", "strength", "forza", "ipertrof", "hypertroph", "gain"}
)

// ClassifyGoal maps a free-text goal to a direction. Cut keywords win over bulk ones.
func ClassifyGoal(profile models.Profile) GoalDirection {
	goal := strings.ToLower(profile.Goal)
	switch {
	case containsAny(goal, cutKeywords):
		return GoalDown
	case containsAny(goal, bulkKeywords):
		return GoalUp
	default:
		return GoalNeutral
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
