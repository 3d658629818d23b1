package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/spf13/cobra"
)

var prsCmd = &cobra.Command{
	Use:   "prs [exercise-name]",
	Short: "Display personal records, for every exercise or a single one",
	Args:  cobra.MaximumNArgs(1),
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

		if len(args) == 1 {
			name := records.NewMatcher(tracker.ExerciseNames()).Match(args[0])
			rec, ok := tracker.Record(name)
			if !ok {
				return fmt.Errorf("no records for exercise %q", args[0])
			}
			printRecordDetail(rec)
			return nil
		}

		all := tracker.All()
		if len(all) == 0 {
			fmt.Println("No personal records yet.")
			return nil
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("  %s\n", boldCyan(fmt.Sprintf("%-24s %10s %10s %6s %12s  %s", "Exercise", "Weight", "1RM", "Reps", "Volume", "Updated")))
		for _, r := range all {
			updated := "-"
			if r.LastUpdated != nil {
				updated = r.LastUpdated.Local().Format("2006-01-02")
			}
			fmt.Printf("  %-24s %8.1fkg %8.0fkg %6d %10.0fkg  %s\n",
				r.DisplayName, r.MaxWeight, r.Max1RM, r.MaxReps, r.MaxVolume, updated)
		}
		return nil
	},
}

func printRecordDetail(rec models.PersonalRecordEntry) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(boldGreen(rec.DisplayName))
	fmt.Printf("  %s: %.1fkg\n", boldCyan("💪 Max Weight"), rec.MaxWeight)
	fmt.Printf("  %s: %.0fkg\n", boldCyan("🎯 Estimated 1RM"), rec.Max1RM)
	fmt.Printf("  %s: %d\n", boldCyan("🔥 Max Reps"), rec.MaxReps)
	fmt.Printf("  %s: %.0fkg\n", boldCyan("📊 Max Volume"), rec.MaxVolume)
	if rec.LastUpdated != nil {
		fmt.Printf("  %s: %s\n", boldCyan("Last record"), rec.LastUpdated.Local().Format("Mon, 02 Jan 2006"))
	}
}

func init() {
	rootCmd.AddCommand(prsCmd)
}
