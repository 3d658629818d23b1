package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var (
	setWeight float64
	setReps   int
	setDelete bool
)

// sessionIndex parses a 1-based index argument into a 0-based one below n.
func sessionIndex(arg, what string, n int) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid %s index (should be 1-based)", what)
	}
	if idx > n {
		return 0, fmt.Errorf("%s index out of range", what)
	}
	return idx - 1, nil
}

var editSetCmd = &cobra.Command{
	Use:   "edit-set [exercise-index] [set-index]",
	Short: "Edit or delete a set in the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		exerciseIndex, err := sessionIndex(args[0], "exercise", len(state.Exercises))
		if err != nil {
			return err
		}
		exercise := &state.Exercises[exerciseIndex]

		setIndex, err := sessionIndex(args[1], "set", len(exercise.Sets))
		if err != nil {
			return err
		}

		if setDelete {
			exercise.Sets = append(exercise.Sets[:setIndex], exercise.Sets[setIndex+1:]...)
		} else {
			if setWeight <= 0 || setReps <= 0 {
				return fmt.Errorf("Weight and reps must be positive")
			}
			exercise.Sets[setIndex] = models.SetEntry{Weight: setWeight, Reps: setReps}
		}

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if setDelete {
			fmt.Println("✅ Set deleted successfully")
		} else {
			fmt.Println("✅ Set updated successfully")
		}
		return nil
	},
}

func init() {
	editSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "Weight used (kg)")
	editSetCmd.Flags().IntVarP(&setReps, "reps", "r", 0, "Reps performed")
	editSetCmd.Flags().BoolVar(&setDelete, "delete", false, "Delete the set instead of editing it")

	rootCmd.AddCommand(editSetCmd)
}
