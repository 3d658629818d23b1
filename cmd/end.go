package cmd

import (
	"fmt"

	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "End the current training session, save it and check for new records",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		workout := state.ToLog()
		if len(workout.Exercises) == 0 {
			return fmt.Errorf("Session has no sets, use cancel-session to discard it")
		}

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		// Save to database.
		if err := st.SaveLog(ctx, &workout); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		notifier, summary, stop := prNotifier(ctx)
		tracker, err := newTracker(ctx, st, notifier)
		if err != nil {
			stop()
			return err
		}
		_, detectErr := tracker.DetectPRsFromLog(ctx, workout)
		stop()

		// Clear temp file.
		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		fmt.Println("✅ Session saved successfully")
		printPRSummary(summary)
		return detectErr
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
