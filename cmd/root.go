package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/misterclayt0n/ironflow/internal/config"
	"github.com/misterclayt0n/ironflow/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "ironflow",
	Short:         "Terminal training log with trend, PR and fatigue analysis",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.Logging.File,
			LogToStderr:   cfg.Logging.ToStderr,
			LogLevel:      level,
			LogFormatJSON: cfg.Logging.JSON,
		})
		return nil
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/ironflow/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}
