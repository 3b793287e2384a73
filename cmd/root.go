package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/schedule-monitor/internal/config"
	"github.com/Tiliavir/schedule-monitor/internal/logger"
)

var (
	configPath string
	logLevel   string

	cfg config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "smc",
	Short: "Schedule Monitoring Calculator – monitoring-hour totals for a date range",
	Long: `smc totals monitoring hours for a schedule of dates and optional times.
The first and last counted day weigh 4h, every day in between 2h. Entries on
weekends, or on weekdays before 08:00 or at/after 17:00, count as after-hours.
Settings live in ~/.smc/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.smc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config and initialises the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	log = logger.Get(level)
	log.Debugw("config loaded", "window_start", cfg.Window.Start, "window_end", cfg.Window.End,
		"edge_hours", cfg.Hours.Edge, "middle_hours", cfg.Hours.Middle)
	return nil
}
