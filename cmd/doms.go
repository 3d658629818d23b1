package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/fatigue"
	"github.com/spf13/cobra"
)

var domsTimeline bool

var domsCmd = &cobra.Command{
	Use:   "doms",
	Short: "Relate soreness reports to the sessions that caused them",
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

		insights := fatigue.ComputeDomsInsights(logs, nil)
		if insights.TotalReports == 0 {
			fmt.Println("No soreness reports yet. Add soreness_muscles to a workout's [workout.wellness] table.")
			return nil
		}

		printBoxedHeader("DOMS HOTSPOTS")
		yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
		for _, h := range insights.Hotspots {
			recovery := "n/a"
			if h.AvgRecoveryDays != nil {
				recovery = fmt.Sprintf("%.1f days", *h.AvgRecoveryDays)
			}
			fmt.Printf("  %s ×%d  intensity %.1f  recovery %s  last %s\n",
				yellowBold(fmt.Sprintf("%-12s", h.Label)), h.Occurrences, h.AvgIntensity, recovery,
				h.LastReportedAt.Local().Format("2006-01-02"))
		}

		if domsTimeline {
			fmt.Printf("\nLatest reports (%d of %d):\n", len(insights.Timeline), insights.TotalReports)
			for _, r := range insights.Timeline {
				intensity := "-"
				if r.Intensity != nil {
					intensity = fmt.Sprintf("%.0f/10", *r.Intensity)
				}
				fmt.Printf("  %s  %s\n", r.RecordedAt.Local().Format("2006-01-02"), intensity)
				for _, m := range r.Muscles {
					since := "no prior session"
					if m.DaysSinceStimulus != nil {
						since = fmt.Sprintf("%d days after training", *m.DaysSinceStimulus)
					}
					fmt.Printf("    • %s, %s\n", m.Label, since)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domsCmd)
	domsCmd.Flags().BoolVarP(&domsTimeline, "timeline", "t", false, "Also list the most recent reports")
}
