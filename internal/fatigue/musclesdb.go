package fatigue

import "strings"

// Group is a muscle group the heatmap knows how to draw.
type Group struct {
	ID    string
	Label string
}

// Groups lists every muscle group in display order, front of the body first.
var Groups = []Group{
	{"chest", "Chest"},
	{"upper-chest", "Upper Chest"},
	{"front-delts", "Front Delts"},
	{"biceps", "Biceps"},
	{"forearms", "Forearms"},
	{"abs", "Abs"},
	{"obliques", "Obliques"},
	{"quads", "Quads"},
	{"adductors", "Adductors"},
	{"calves", "Calves"},
	{"traps", "Traps"},
	{"lats", "Lats"},
	{"lower-back", "Lower Back"},
	{"rear-delts", "Rear Delts"},
	{"triceps", "Triceps"},
	{"glutes", "Glutes"},
	{"hamstrings", "Hamstrings"},
}

// Label returns the display label of a group id, or the id itself when unknown.
func Label(id string) string {
	for _, g := range Groups {
		if g.ID == id {
			return g.Label
		}
	}
	return id
}

// MuscleEntry maps an exercise name fragment to the groups it loads.
type MuscleEntry struct {
	Key    string
	Groups []string
}

// MuscleDB is matched in order: the first Key contained in the lowercased
// exercise name wins, so longer and more specific keys must come first.
type MuscleDB []MuscleEntry

// Lookup returns the groups loaded by an exercise, or nil when no key matches.
func (db MuscleDB) Lookup(exerciseName string) []string {
	name := strings.ToLower(strings.TrimSpace(exerciseName))
	if name == "" {
		return nil
	}
	for _, e := range db {
		if strings.Contains(name, e.Key) {
			return e.Groups
		}
	}
	return nil
}

// DefaultMuscleDB covers the common Italian and English gym names.
var DefaultMuscleDB = MuscleDB{
	// chest
	{"panca inclinata", []string{"upper-chest", "front-delts", "triceps"}},
	{"incline bench", []string{"upper-chest", "front-delts", "triceps"}},
	{"incline press", []string{"upper-chest", "front-delts", "triceps"}},
	{"panca piana", []string{"chest", "front-delts", "triceps"}},
	{"bench press", []string{"chest", "front-delts", "triceps"}},
	{"croci", []string{"chest"}},
	{"chest fly", []string{"chest"}},
	{"pec deck", []string{"chest"}},
	{"push up", []string{"chest", "triceps", "front-delts"}},
	{"piegamenti", []string{"chest", "triceps", "front-delts"}},
	{"dips", []string{"chest", "triceps"}},
	{"panca", []string{"chest", "front-delts", "triceps"}},

	// shoulders
	{"military", []string{"front-delts", "triceps"}},
	{"overhead press", []string{"front-delts", "triceps"}},
	{"lento avanti", []string{"front-delts", "triceps"}},
	{"alzate laterali", []string{"front-delts"}},
	{"lateral raise", []string{"front-delts"}},
	{"alzate posteriori", []string{"rear-delts"}},
	{"reverse fly", []string{"rear-delts"}},
	{"face pull", []string{"rear-delts", "traps"}},
	{"scrollate", []string{"traps"}},
	{"shrug", []string{"traps"}},

	// back
	{"stacco rumeno", []string{"hamstrings", "glutes", "lower-back"}},
	{"romanian deadlift", []string{"hamstrings", "glutes", "lower-back"}},
	{"stacco", []string{"lower-back", "glutes", "hamstrings", "traps"}},
	{"deadlift", []string{"lower-back", "glutes", "hamstrings", "traps"}},
	{"trazioni", []string{"lats", "biceps"}},
	{"pull up", []string{"lats", "biceps"}},
	{"chin up", []string{"lats", "biceps"}},
	{"lat machine", []string{"lats", "biceps"}},
	{"lat pulldown", []string{"lats", "biceps"}},
	{"rematore", []string{"lats", "rear-delts", "biceps"}},
	{"row", []string{"lats", "rear-delts", "biceps"}},
	{"pulley", []string{"lats", "biceps"}},
	{"hyperextension", []string{"lower-back", "glutes"}},

	// arms
	{"french press", []string{"triceps"}},
	{"skull crusher", []string{"triceps"}},
	{"pushdown", []string{"triceps"}},
	{"push down", []string{"triceps"}},
	{"tricep", []string{"triceps"}},
	{"hammer curl", []string{"biceps", "forearms"}},
	{"leg curl", []string{"hamstrings"}},
	{"curl", []string{"biceps"}},
	{"wrist", []string{"forearms"}},
	{"polsi", []string{"forearms"}},

	// legs
	{"front squat", []string{"quads", "glutes", "abs"}},
	{"squat", []string{"quads", "glutes", "adductors"}},
	{"leg press", []string{"quads", "glutes"}},
	{"pressa", []string{"quads", "glutes"}},
	{"affondi", []string{"quads", "glutes"}},
	{"lunge", []string{"quads", "glutes"}},
	{"leg extension", []string{"quads"}},
	{"hip thrust", []string{"glutes", "hamstrings"}},
	{"adductor", []string{"adductors"}},
	{"adduttori", []string{"adductors"}},
	{"calf", []string{"calves"}},
	{"polpacci", []string{"calves"}},

	// core
	{"crunch", []string{"abs"}},
	{"plank", []string{"abs", "obliques"}},
	{"addominali", []string{"abs"}},
	{"russian twist", []string{"obliques"}},
	{"obliqu", []string{"obliques"}},
}
