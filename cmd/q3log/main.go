package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/q3log/q3log-go/internal/config"
	"github.com/q3log/q3log-go/internal/logfinder"
)

var (
	// Version information (set by ldflags)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	verbose bool
	cfgFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "q3log",
	Short: "Quake 3 Arena game log parser",
	Long: `q3log is a tool for parsing Quake 3 Arena server logs (games.log).

It decodes server events like client connections, kills, and match
boundaries, reconstructs the individual games a server ran, and
aggregates per-game and overall kill statistics. Events are output
as JSON Lines for easy processing with other tools.`,
	SilenceUsage: true, // Don't show usage on error
}

func init() {
	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file (default: $Q3LOG_CONFIG, then <user config dir>/q3log/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(tailCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("q3log %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// loadConfig reads the optional config file named by --config.
func loadConfig() (config.Config, error) {
	return config.Load(cfgFile)
}

// resolveLogFile picks the games.log path for batch commands.
// Priority: positional arg, --log-file flag, config file, then the
// standard locations.
func resolveLogFile(args []string, flagValue string, cfg config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	return logfinder.FindLogFile("")
}
