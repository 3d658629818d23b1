package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/fatigue"
	"github.com/spf13/cobra"
)

var heatmapDays int

const barWidth = 20

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show the decayed training load of every muscle group",
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

		days := cfg.Analysis.FatigueDays
		if heatmapDays > 0 {
			days = heatmapDays
		}
		scores := fatigue.NewModel(nil, nil).CalculateFatigue(logs, days)

		printBoxedHeader(fmt.Sprintf("MUSCLE FATIGUE (%d days)", days))
		for _, g := range fatigue.Groups {
			score := scores[g.ID]
			fmt.Printf("  %-12s %s %3.0f\n", g.Label, fatigueBar(score), score)
		}
		fmt.Println()
		fmt.Printf("  %s rest   %s low   %s active   %s overload\n",
			levelColor(fatigue.LevelIdle)("██"),
			levelColor(fatigue.LevelLow)("██"),
			levelColor(fatigue.LevelActive)("██"),
			levelColor(fatigue.LevelOverload)("██"),
		)
		return nil
	},
}

func levelColor(level fatigue.Level) func(a ...interface{}) string {
	switch level {
	case fatigue.LevelLow:
		return color.New(color.FgCyan).SprintFunc()
	case fatigue.LevelActive:
		return color.New(color.FgGreen).SprintFunc()
	case fatigue.LevelOverload:
		return color.New(color.FgRed).SprintFunc()
	default:
		return color.New(color.FgHiBlack).SprintFunc()
	}
}

func fatigueBar(score float64) string {
	filled := int(math.Round(score / fatigue.MaxScore * barWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return levelColor(fatigue.LevelOf(score))(bar)
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
	heatmapCmd.Flags().IntVarP(&heatmapDays, "days", "d", 0, "Lookback window in days (default from config)")
}
