package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current training session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session to cancel")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}
		discarded := 0
		for _, ex := range state.Exercises {
			discarded += len(ex.Sets)
		}

		// Just clear the temp session file and we gucci.
		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Printf("✅ Session cancelled, %d sets discarded\n", discarded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
