package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/misterclayt0n/ironflow/internal/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	newSetWeight float64
	newSetReps   int
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise]",
	Short: "Add a set to an exercise in the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}
		if newSetWeight <= 0 || newSetReps <= 0 {
			return fmt.Errorf("Weight and reps must be positive")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session state: %w", err)
		}

		name := sessionExerciseName(cmd, state, args[0])
		idx := -1
		for i, ex := range state.Exercises {
			if ex.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			state.Exercises = append(state.Exercises, models.ExerciseEntry{Name: name})
			idx = len(state.Exercises) - 1
		}

		state.Exercises[idx].Sets = append(state.Exercises[idx].Sets, models.SetEntry{
			Weight: newSetWeight,
			Reps:   newSetReps,
		})

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Added %.1fkg × %d to '%s' (set %d)\n",
			newSetWeight, newSetReps, name, len(state.Exercises[idx].Sets))
		return nil
	},
}

// sessionExerciseName maps the typed name onto an exercise already in the
// session or in the record book, so typos don't split an exercise in two.
func sessionExerciseName(cmd *cobra.Command, state *models.SessionState, typed string) string {
	var known []string
	for _, ex := range state.Exercises {
		known = append(known, ex.Name)
	}

	st, err := openStorage(cmd.Context())
	if err != nil {
		log.Debugf("add-set: no storage for name matching: %s", err)
	} else {
		defer st.Close()
		if tracker, err := newTracker(cmd.Context(), st, nil); err == nil {
			known = append(known, tracker.ExerciseNames()...)
		}
	}

	return records.NewMatcher(known).Match(typed)
}

func init() {
	addSetCmd.Flags().Float64VarP(&newSetWeight, "weight", "w", 0, "Weight used for the new set (kg)")
	addSetCmd.Flags().IntVarP(&newSetReps, "reps", "r", 0, "Number of reps performed for the new set")
	addSetCmd.MarkFlagRequired("weight")
	addSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(addSetCmd)
}
