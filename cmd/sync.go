package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export workouts, body stats and records to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "db_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		store, err := recordStore(st)
		if err != nil {
			return err
		}
		if err := st.Export(cmd.Context(), outputFile, store); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Rebuild the entire database from the given TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		store, err := recordStore(st)
		if err != nil {
			return err
		}
		dump, err := st.Import(cmd.Context(), args[0], store)
		if err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Printf("✅ Database built from TOML dump: %d workouts, %d body stats, %d records\n",
			len(dump.Workouts), len(dump.BodyStats), len(dump.Records.Records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
