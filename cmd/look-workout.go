package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var lookWorkoutCmd = &cobra.Command{
	Use:     "look-workout [workout-id]",
	Aliases: []string{"look-session"},
	Short:   "Display detailed information for a saved workout by its ID (or ID prefix)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		workout, err := st.GetLog(ctx, args[0])
		if err != nil {
			return fmt.Errorf("Failed to retrieve workout: %w", err)
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Println(boldGreen("Workout Details:"))
		fmt.Printf("  %s: %s\n", cyan("Workout ID"), workout.ID)
		fmt.Printf("  %s: %s\n", cyan("Date"), workout.Date.Local().Format(time.RFC1123))
		fmt.Printf("  %s: %.0f kg\n", cyan("Volume"), workout.TotalVolume())
		if workout.Notes != "" {
			fmt.Printf("  %s: %s\n", magenta("Notes"), workout.Notes)
		}
		if w := workout.Wellness; w != nil {
			printWellness(w, magenta)
		}
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println()

		if len(workout.Exercises) == 0 {
			fmt.Println(magenta("No exercises found in this workout."))
			return nil
		}
		for i, ex := range workout.Exercises {
			fmt.Printf("%s %d. %s\n", boldGreen("Exercise"), i+1, ex.Name)
			if len(ex.Sets) == 0 {
				fmt.Println("   " + magenta("No set data available."))
				fmt.Println()
				continue
			}
			fmt.Println("   " + boldGreen("Sets:"))
			fmt.Printf("      %-4s | %-12s | %-5s | %-8s\n", "Set", "Weight (kg)", "Reps", "Est. 1RM")
			fmt.Println("      " + strings.Repeat("─", 40))
			for j, set := range ex.Sets {
				fmt.Printf("      %-4d | %-12.1f | %-5d | %s\n",
					j+1, set.Weight, set.Reps, yellow(fmt.Sprintf("%.0f", utils.CalculateBrzycki1RM(set.Weight, set.Reps))))
			}
			fmt.Println()
		}

		return nil
	},
}

func printWellness(w *models.Wellness, label func(a ...interface{}) string) {
	scale := func(name string, v *float64) {
		if v != nil {
			fmt.Printf("  %s: %.1f/10\n", label(name), *v)
		}
	}
	scale("Sleep", w.SleepQuality)
	scale("Energy", w.EnergyLevel)
	scale("Stress", w.StressLevel)
	scale("Soreness", w.SorenessLevel)
	if len(w.SorenessMuscles) > 0 {
		fmt.Printf("  %s: %s\n", label("Sore"), strings.Join(w.SorenessMuscles, ", "))
	}
}

func init() {
	rootCmd.AddCommand(lookWorkoutCmd)
}
