package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [new-exercise-name]",
	Short: "Rename an exercise in the current session, keeping its sets",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session currently")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		idx, err := sessionIndex(args[0], "exercise", len(state.Exercises))
		if err != nil {
			return err
		}

		oldName := state.Exercises[idx].Name
		newName := sessionExerciseName(cmd, state, args[1])

		// Merge into an existing exercise of the same name.
		for i := range state.Exercises {
			if i != idx && state.Exercises[i].Name == newName {
				state.Exercises[i].Sets = append(state.Exercises[i].Sets, state.Exercises[idx].Sets...)
				state.Exercises = append(state.Exercises[:idx], state.Exercises[idx+1:]...)
				idx = -1
				break
			}
		}
		if idx >= 0 {
			state.Exercises[idx].Name = newName
		}

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Printf("✅ Swapped '%s' for '%s'\n", oldName, newName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
