package cmd

import (
	"fmt"
	"sort"

	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/misterclayt0n/ironflow/internal/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var matchExisting bool

var logWorkoutCmd = &cobra.Command{
	Use:   "log-workout [file.toml]",
	Short: "Import workout logs from a TOML file and detect new personal records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logs, err := utils.ParseWorkoutsFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read workouts: %w", err)
		}
		// PRs must be detected in training order.
		sort.SliceStable(logs, func(i, j int) bool {
			return logs[i].Date.Before(logs[j].Date)
		})

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		notifier, summary, stop := prNotifier(ctx)
		tracker, err := newTracker(ctx, st, notifier)
		if err != nil {
			stop()
			return err
		}

		var matcher *records.Matcher
		if matchExisting {
			matcher = records.NewMatcher(tracker.ExerciseNames())
		}

		saved, skipped := 0, 0
		for i := range logs {
			w := &logs[i]
			if w.Date.IsZero() {
				log.Warnf("log-workout: workout #%d has no valid date, skipping", i+1)
				skipped++
				continue
			}
			if w.ID != "" {
				exists, err := st.LogExists(ctx, w.ID)
				if err != nil {
					stop()
					return err
				}
				if exists {
					log.Infof("log-workout: workout %s already imported, skipping", w.ID)
					skipped++
					continue
				}
			}

			if matcher != nil {
				for j := range w.Exercises {
					w.Exercises[j].Name = matcher.Match(w.Exercises[j].Name)
				}
			}

			if err := st.SaveLog(ctx, w); err != nil {
				stop()
				return fmt.Errorf("Failed to save workout of %s: %w", utils.DayKey(w.Date), err)
			}
			saved++

			if _, err := tracker.DetectPRsFromLog(ctx, *w); err != nil {
				stop()
				return err
			}
		}

		stop()
		fmt.Printf("✅ Imported %d workouts (%d skipped)\n", saved, skipped)
		printPRSummary(summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logWorkoutCmd)
	logWorkoutCmd.Flags().BoolVarP(&matchExisting, "match-existing", "m", false, "Map exercise names onto similar names you already have records for")
}
