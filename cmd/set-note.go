package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var noteText string

var setNoteCmd = &cobra.Command{
	Use:   "set-note",
	Short: "Set the note of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		state.Notes = noteText

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Println("✅ Note set successfully")
		return nil
	},
}

var (
	wellSleep    float64
	wellEnergy   float64
	wellStress   float64
	wellSoreness float64
	wellMuscles  []string
)

var setWellnessCmd = &cobra.Command{
	Use:   "set-wellness",
	Short: "Record how you feel today (0-10 scales) and which muscles are sore",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session")
		}

		state, err := utils.LoadSessionState()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}
		if state.Wellness == nil {
			state.Wellness = &models.Wellness{}
		}
		w := state.Wellness

		flags := cmd.Flags()
		for _, f := range []struct {
			name  string
			value float64
			dst   **float64
		}{
			{"sleep", wellSleep, &w.SleepQuality},
			{"energy", wellEnergy, &w.EnergyLevel},
			{"stress", wellStress, &w.StressLevel},
			{"soreness", wellSoreness, &w.SorenessLevel},
		} {
			if !flags.Changed(f.name) {
				continue
			}
			if f.value < 0 || f.value > 10 {
				return fmt.Errorf("--%s must be between 0 and 10", f.name)
			}
			v := f.value
			*f.dst = &v
		}
		if flags.Changed("sore") {
			w.SorenessMuscles = nil
			for _, m := range wellMuscles {
				if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
					w.SorenessMuscles = append(w.SorenessMuscles, m)
				}
			}
			now := time.Now()
			w.RecordedAt = &now
		}

		if err := utils.SaveSessionState(state); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Println("✅ Wellness recorded")
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)

	setWellnessCmd.Flags().Float64Var(&wellSleep, "sleep", 0, "Sleep quality, 0-10")
	setWellnessCmd.Flags().Float64Var(&wellEnergy, "energy", 0, "Energy level, 0-10")
	setWellnessCmd.Flags().Float64Var(&wellStress, "stress", 0, "Stress level, 0-10")
	setWellnessCmd.Flags().Float64Var(&wellSoreness, "soreness", 0, "Soreness level, 0-10")
	setWellnessCmd.Flags().StringSliceVar(&wellMuscles, "sore", nil, "Sore muscle groups, e.g. quads,glutes")
	rootCmd.AddCommand(setWellnessCmd)
}
