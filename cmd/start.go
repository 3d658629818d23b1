package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var sessionNotes string

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Starts a new training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() {
			return fmt.Errorf("A session is already active, end or cancel it first")
		}

		state := &models.SessionState{
			SessionID: uuid.New().String(),
			StartTime: time.Now(),
			Notes:     sessionNotes,
		}
		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		fmt.Printf("✅ Started session %s\n", state.SessionID)
		return nil
	},
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&sessionNotes, "notes", "n", "", "Notes for the session")
}
