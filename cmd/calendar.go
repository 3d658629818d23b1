package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/records"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose session details.
var details bool

// calendarCmd prints the calendar grid. Training days are colored by
// session volume, and days on which a record fell are marked.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days, colored by volume, with record days marked",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		logs, err := st.ListLogs(ctx)
		if err != nil {
			return fmt.Errorf("failed to get workouts: %w", err)
		}
		tracker, err := newTracker(ctx, st, nil)
		if err != nil {
			return err
		}

		logsByDay := make(map[int][]models.WorkoutLog)
		volumeByDay := make(map[int]float64)
		maxVolume := 0.0
		for _, l := range logs {
			d := l.Date.In(time.Local)
			if d.Year() != year || d.Month() != month {
				continue
			}
			logsByDay[d.Day()] = append(logsByDay[d.Day()], l)
			volumeByDay[d.Day()] += l.TotalVolume()
			if volumeByDay[d.Day()] > maxVolume {
				maxVolume = volumeByDay[d.Day()]
			}
		}

		prDays := make(map[int]bool)
		for _, h := range tracker.History(records.MaxHistory) {
			d := h.Date.In(time.Local)
			if d.Year() == year && d.Month() == month {
				prDays[d.Day()] = true
			}
		}

		light := color.New(color.FgCyan).SprintFunc()
		medium := color.New(color.FgGreen).SprintFunc()
		heavy := color.New(color.FgRed).SprintFunc()
		pr := color.New(color.FgYellow, color.Bold).SprintFunc()

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if _, trained := logsByDay[day]; trained {
				share := 0.0
				if maxVolume > 0 {
					share = volumeByDay[day] / maxVolume
				}
				switch {
				case prDays[day]:
					dayStr = pr(dayStr + "*")
				case share < 0.4:
					dayStr = light(dayStr)
				case share < 0.8:
					dayStr = medium(dayStr)
				default:
					dayStr = heavy(dayStr)
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		fmt.Printf("  %s: light   %s: medium   %s: heavy   %s: new record\n",
			light("██"), medium("██"), heavy("██"), pr("██"))

		if details {
			fmt.Println("\nSession Details:")
			var days []int
			for d := range logsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, l := range logsByDay[day] {
					names := make([]string, 0, len(l.Exercises))
					for _, ex := range l.Exercises {
						names = append(names, ex.Name)
					}
					fmt.Printf("  %s  %.0f kg  %s\n", l.Date.Local().Format("15:04"), l.TotalVolume(), strings.Join(names, ", "))
				}
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "v", false, "Print additional session details")
}
