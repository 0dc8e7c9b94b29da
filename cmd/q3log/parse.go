package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/q3log/q3log-go/pkg/q3log"
)

var (
	// parse flags
	parseLogFile      string
	parseIncludeTypes []string
	parseExcludeTypes []string
	parseFormat       string
	parseRaw          bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a games.log file (batch mode)",
	Long: `Parse a Quake 3 Arena games.log file and output decoded events.

Unlike 'tail', this command processes a historical file without
real-time following. Lines that do not match any known event shape
are skipped silently.

Examples:
  # Parse the auto-detected games.log
  q3log parse

  # Parse a specific file
  q3log parse /var/quake3/baseq3/games.log

  # Filter by event type
  q3log parse --include-types kill,init_game

  # Human-readable output
  q3log parse --format pretty

  # Pipe to jq for filtering
  q3log parse | jq 'select(.type == "kill")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseLogFile, "log-file", "l", "",
		"games.log path (auto-detected if not specified)")
	parseCmd.Flags().StringSliceVar(&parseIncludeTypes, "include-types", nil,
		"Event types to include (comma-separated: kill,init_game,...)")
	parseCmd.Flags().StringSliceVar(&parseExcludeTypes, "exclude-types", nil,
		"Event types to exclude (comma-separated)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "",
		"Output format: jsonl, pretty (default: jsonl)")
	parseCmd.Flags().BoolVar(&parseRaw, "raw", false,
		"Include raw log lines in output")

	registerEventTypeCompletion(parseCmd, "include-types")
	registerEventTypeCompletion(parseCmd, "exclude-types")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := parseFormat
	if format == "" {
		format = cfg.Format
	}
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty", format)
	}

	// Normalize and validate event types
	includes, err := NormalizeEventTypes(parseIncludeTypes)
	if err != nil {
		return err
	}
	excludes, err := NormalizeEventTypes(parseExcludeTypes)
	if err != nil {
		return err
	}
	if err := RejectOverlap(includes, excludes); err != nil {
		return err
	}

	logFile, err := resolveLogFile(args, parseLogFile, cfg)
	if err != nil {
		return err
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build parse options
	var opts []q3log.ParseOption

	if len(includes) > 0 {
		opts = append(opts, q3log.WithParseIncludeKinds(includes...))
	}
	if len(excludes) > 0 {
		opts = append(opts, q3log.WithParseExcludeKinds(excludes...))
	}
	if parseRaw {
		opts = append(opts, q3log.WithParseIncludeRawLine(true))
	}

	for ev, err := range q3log.ParseFile(ctx, logFile, opts...) {
		if err != nil {
			// Ctrl+C: exit silently
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("parse error: %w", err)
		}

		if err := OutputEvent(format, ev, os.Stdout); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	return nil
}
