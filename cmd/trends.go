package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/metrics"
	"github.com/misterclayt0n/ironflow/internal/trend"
	"github.com/spf13/cobra"
)

var (
	trendUnit string
	trendDays int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Compare the recent window against the previous one for every metric",
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
		stats, err := st.ListBodyStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve body stats: %w", err)
		}

		unit := cfg.Analysis.Unit
		if trendUnit != "" {
			unit = trendUnit
		}
		days := cfg.Analysis.WindowDays
		if trendDays > 0 {
			days = trendDays
		}

		result := trend.NewEngine(days, nil).Evaluate(logs, stats, profile(), metrics.ParseUnit(unit))

		printBoxedHeader(fmt.Sprintf("TRENDS (%d vs %d days)", days, days))
		if len(result.Metrics) > 0 {
			printTrendTable(result.Metrics)
		}
		fmt.Println()
		fmt.Println(result.Digest)
		return nil
	},
}

func printTrendTable(rows []trend.TrendMetric) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("  %s\n", bold(fmt.Sprintf("%-18s %-18s %-18s %s", "Metric", "Recent", "Previous", "Change")))
	for _, m := range rows {
		summary := m.Summary
		switch m.Sentiment {
		case trend.SentimentPositive:
			summary = green(summary)
		case trend.SentimentNegative:
			summary = red(summary)
		default:
			if m.Status == trend.StatusVariant {
				summary = yellow(summary)
			}
		}
		fmt.Printf("  %-18s %-18s %-18s %s\n", m.Label, m.CurrentText, m.PreviousText, summary)
	}
}

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.Flags().StringVarP(&trendUnit, "unit", "u", "", "Display unit: metric or imperial (default from config)")
	trendsCmd.Flags().IntVarP(&trendDays, "days", "d", 0, "Window size in days (default from config)")
}
