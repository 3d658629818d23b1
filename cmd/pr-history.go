package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/notify"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/spf13/cobra"
)

var prHistoryLimit int

var prHistoryCmd = &cobra.Command{
	Use:   "pr-history",
	Short: "List the latest record-breaking sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker, err := newTracker(ctx, st, nil)
		if err != nil {
			return err
		}

		history := tracker.History(prHistoryLimit)
		if len(history) == 0 {
			fmt.Println("No personal records yet.")
			return nil
		}

		blue := color.New(color.FgBlue).SprintFunc()
		for _, h := range history {
			msg, _ := notify.Format(notify.FromHistory(h))
			fmt.Printf("%s %s\n", blue(h.Date.Local().Format("2006-01-02")), msg.Title)
			for _, r := range h.Records {
				line := fmt.Sprintf("%s: %g → %g %s", r.Label, r.OldValue, r.NewValue, r.Unit)
				if r.Context != "" {
					line += " " + r.Context
				}
				fmt.Printf("    %s\n", line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prHistoryCmd)
	prHistoryCmd.Flags().IntVarP(&prHistoryLimit, "limit", "l", records.DefaultHistoryLimit, "Number of entries to display")
}
