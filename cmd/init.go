package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Println("✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
