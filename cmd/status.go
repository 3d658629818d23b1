package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/fatigue"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show meta data: total weight lifted, session count, week streak, records and sets per muscle (current week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		logs, err := st.ListLogs(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}
		tracker, err := newTracker(ctx, st, nil)
		if err != nil {
			return err
		}

		now := time.Now()
		var totalWeight float64
		muscleSetsThisWeek := make(map[string]int)
		currentYear, currentWeek := now.ISOWeek()

		for _, l := range logs {
			totalWeight += l.TotalVolume()

			year, week := l.Date.ISOWeek()
			if year != currentYear || week != currentWeek {
				continue
			}
			for _, ex := range l.Exercises {
				for _, g := range fatigue.DefaultMuscleDB.Lookup(ex.Name) {
					muscleSetsThisWeek[g] += ex.ValidSets()
				}
			}
		}

		printBoxedHeader("STATUS")

		printMetric("Total weight lifted", fmt.Sprintf("%.1f kg", totalWeight))
		printMetric("Total sessions", len(logs))
		printMetric("Week streak", fmt.Sprintf("%d weeks", computeWeekStreak(logs, now)))
		printMetric("Exercises with records", len(tracker.All()))
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Sets per muscle (current week):")
		fmt.Println(header)
		var muscles []string
		for m := range muscleSetsThisWeek {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)
		if len(muscles) == 0 {
			fmt.Println("  nothing yet this week")
		}
		for _, m := range muscles {
			fmt.Printf("  %-12s %d\n", fatigue.Label(m), muscleSetsThisWeek[m])
		}
		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText2(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText2(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// computeWeekStreak counts consecutive ISO weeks, ending with the week of
// now, that have at least one workout.
func computeWeekStreak(logs []models.WorkoutLog, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, l := range logs {
		year, week := l.Date.ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
