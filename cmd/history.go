package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterDay     string
	filterLimit   int
	filterVerbose bool
)

// historyCmd shows saved workouts grouped by day, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display saved workouts, optionally filtered by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		var logs []models.WorkoutLog
		if filterDay != "" {
			day, ok := utils.ParseDate(filterDay)
			if !ok {
				return fmt.Errorf("failed to parse day: %s", filterDay)
			}
			logs, err = st.LogsOnDay(ctx, day)
		} else {
			logs, err = st.ListLogs(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		if filterLimit > 0 && len(logs) > filterLimit {
			logs = logs[:filterLimit]
		}
		if len(logs) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		grouped := make(map[string][]models.WorkoutLog)
		for _, l := range logs {
			day := utils.DayKey(l.Date.Local())
			grouped[day] = append(grouped[day], l)
		}
		var days []string
		for d := range grouped {
			days = append(days, d)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(days)))

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		for _, d := range days {
			fmt.Printf("%s\n", green("Date: "+d))
			for _, l := range grouped[d] {
				sets := 0
				for _, ex := range l.Exercises {
					sets += ex.ValidSets()
				}
				fmt.Printf("  %s | %d exercises | %d sets | volume %.0f kg\n",
					l.Date.Local().Format("15:04"), len(l.Exercises), sets, l.TotalVolume())
				if l.Notes != "" {
					fmt.Printf("    %s %s\n", cyan("Notes:"), l.Notes)
				}
				if filterVerbose {
					for _, ex := range l.Exercises {
						fmt.Printf("    • %s\n", ex.Name)
						for i, set := range ex.Sets {
							fmt.Printf("        %d. %.1fkg × %d\n", i+1, set.Weight, set.Reps)
						}
					}
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&filterLimit, "limit", "l", 0, "Show at most this many workouts")
	historyCmd.Flags().BoolVarP(&filterVerbose, "verbose", "v", false, "Print every exercise and set")
}
