package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/misterclayt0n/ironflow/internal/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	tableIndent     = "   "
	setColWidth     = 6
	currentColWidth = 20
	oneRMColWidth   = 14
	recordColWidth  = 16
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		var tracker *records.Tracker
		if st, err := openStorage(cmd.Context()); err != nil {
			log.Debugf("show-session: records unavailable: %s", err)
		} else {
			defer st.Close()
			tracker, err = newTracker(cmd.Context(), st, nil)
			if err != nil {
				log.Debugf("show-session: records unavailable: %s", err)
			}
		}

		duration := time.Since(state.StartTime).Round(time.Second)

		cyan := color.New(color.FgCyan).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Printf("%s %s\n", green("Session"), state.SessionID)
		if state.Notes != "" {
			fmt.Printf("%s %s\n", cyan("Notes:"), state.Notes)
		}
		fmt.Printf("%s %s\n\n", red("Duration:"), duration)

		if len(state.Exercises) == 0 {
			fmt.Println("No sets yet. Add one with: ironflow add-set <exercise> -w <kg> -r <reps>")
			return nil
		}

		for i, ex := range state.Exercises {
			var best *models.PersonalRecordEntry
			if tracker != nil {
				if rec, ok := tracker.Record(ex.Name); ok {
					best = &rec
				}
			}
			printSessionExercise(i+1, ex, best, cyan)
		}
		return nil
	},
}

func tableBorder(left, mid, right string) string {
	return tableIndent + left +
		strings.Repeat("─", setColWidth) + mid +
		strings.Repeat("─", currentColWidth) + mid +
		strings.Repeat("─", oneRMColWidth) + mid +
		strings.Repeat("─", recordColWidth) + right
}

// printSessionExercise prints one exercise of the draft session. Sets whose
// estimated 1RM would beat the stored record are marked with a star.
func printSessionExercise(idx int, ex models.ExerciseEntry, best *models.PersonalRecordEntry, cyan func(a ...interface{}) string) {
	fmt.Printf("%d - %s\n", idx, cyan(ex.Name))

	bestOneRM := 0.0
	recordText := "First time"
	if best != nil && best.Max1RM > 0 {
		bestOneRM = best.Max1RM
		recordText = fmt.Sprintf("%.0fkg", best.Max1RM)
		fmt.Printf("   %s %.1fkg (1RM: %.0fkg)\n", cyan("All-time PR:"), best.MaxWeight, best.Max1RM)
	}

	fmt.Println(tableBorder("┌", "┬", "┐"))
	fmt.Printf(tableIndent+"│%-*s│%-*s│%-*s│%-*s│\n",
		setColWidth, "Set",
		currentColWidth, "Current",
		oneRMColWidth, "Est. 1RM",
		recordColWidth, "Record 1RM",
	)
	fmt.Println(tableBorder("├", "┼", "┤"))

	for setIdx, set := range ex.Sets {
		setStr := "Not completed"
		oneRMStr := "-"
		if set.Valid() {
			setStr = fmt.Sprintf("%.1fkg × %d", set.Weight, set.Reps)
			oneRM := utils.CalculateBrzycki1RM(set.Weight, set.Reps)
			oneRMStr = fmt.Sprintf("%.0fkg", oneRM)
			if oneRM > bestOneRM {
				setStr += " ★"
			}
		}

		fmt.Printf(tableIndent+"│%-*d│%-*s│%-*s│%-*s│\n",
			setColWidth, setIdx+1,
			currentColWidth, setStr,
			oneRMColWidth, oneRMStr,
			recordColWidth, recordText,
		)
	}
	fmt.Println(tableBorder("└", "┴", "┘"))
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
