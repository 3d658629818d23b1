package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/ironflow/internal/models"
	"github.com/misterclayt0n/ironflow/internal/utils"
	"github.com/spf13/cobra"
)

var (
	bodyWeight float64
	bodyDate   string
)

var addBodyStatCmd = &cobra.Command{
	Use:   "add-bodystat",
	Short: "Record a body weight sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		if bodyWeight <= 0 {
			return fmt.Errorf("Weight must be positive")
		}

		date := time.Now()
		if bodyDate != "" {
			d, ok := utils.ParseDate(bodyDate)
			if !ok {
				return fmt.Errorf("Invalid date: %s", bodyDate)
			}
			date = d
		}

		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		stat := models.BodyStat{Date: date, Weight: bodyWeight}
		if err := st.AddBodyStat(cmd.Context(), &stat); err != nil {
			return fmt.Errorf("Failed to save body stat: %w", err)
		}

		fmt.Printf("✅ Recorded %.1f kg on %s\n", stat.Weight, utils.DayKey(stat.Date))
		return nil
	},
}

func init() {
	addBodyStatCmd.Flags().Float64VarP(&bodyWeight, "weight", "w", 0, "Body weight in kg")
	addBodyStatCmd.Flags().StringVarP(&bodyDate, "date", "d", "", "Date of the sample (e.g. 2025-02-07 or 07/02/25), default now")
	addBodyStatCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(addBodyStatCmd)
}
