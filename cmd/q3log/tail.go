package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/q3log/q3log-go/pkg/q3log"
)

var (
	// tail flags
	tailLogFile      string
	tailFormat       string
	tailIncludeTypes []string
	tailExcludeTypes []string
	tailRaw          bool
	tailFromStart    bool
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Monitor a games.log and output events",
	Long: `Monitor a Quake 3 Arena games.log in real-time and output decoded events.

Events are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq. The file is
re-opened automatically when the server truncates it between matches.

Examples:
  # Monitor with default settings (auto-detect games.log)
  q3log tail

  # Specify the log file
  q3log tail --log-file /var/quake3/baseq3/games.log

  # Output only kill events
  q3log tail --include-types kill

  # Exclude item pickups
  q3log tail --exclude-types item

  # Human-readable output
  q3log tail --format pretty

  # Replay the existing file content before following
  q3log tail --from-start

  # Pipe to jq for filtering
  q3log tail | jq 'select(.type == "kill")'`,
	RunE: runTail,
}

func init() {
	tailCmd.Flags().StringVarP(&tailLogFile, "log-file", "l", "",
		"games.log path (auto-detected if not specified)")
	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "",
		"Output format: jsonl, pretty (default: jsonl)")
	tailCmd.Flags().StringSliceVar(&tailIncludeTypes, "include-types", nil,
		"Event types to include (comma-separated: kill,init_game,...)")
	tailCmd.Flags().StringSliceVar(&tailExcludeTypes, "exclude-types", nil,
		"Event types to exclude (comma-separated)")
	tailCmd.Flags().BoolVar(&tailRaw, "raw", false,
		"Include raw log lines in output")
	tailCmd.Flags().BoolVar(&tailFromStart, "from-start", false,
		"Read the whole file before following new lines")

	registerEventTypeCompletion(tailCmd, "include-types")
	registerEventTypeCompletion(tailCmd, "exclude-types")
}

func runTail(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := tailFormat
	if format == "" {
		format = cfg.Format
	}
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty", format)
	}

	// Normalize and validate event types
	includes, err := NormalizeEventTypes(tailIncludeTypes)
	if err != nil {
		return err
	}
	excludes, err := NormalizeEventTypes(tailExcludeTypes)
	if err != nil {
		return err
	}
	if err := RejectOverlap(includes, excludes); err != nil {
		return err
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build watch options using functional options pattern
	var watchOpts []q3log.WatchOption

	logFile := tailLogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}
	if logFile != "" {
		watchOpts = append(watchOpts, q3log.WithLogFile(logFile))
	}

	if tailRaw {
		watchOpts = append(watchOpts, q3log.WithIncludeRawLine(true))
	}
	if tailFromStart {
		watchOpts = append(watchOpts, q3log.WithFromStart())
	}

	// Setup logger based on verbose flag
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		watchOpts = append(watchOpts, q3log.WithLogger(logger))
	}

	// Use library-level filtering (more efficient than CLI-side filtering)
	if len(includes) > 0 {
		watchOpts = append(watchOpts, q3log.WithIncludeKinds(includes...))
	}
	if len(excludes) > 0 {
		watchOpts = append(watchOpts, q3log.WithExcludeKinds(excludes...))
	}

	watcher, err := q3log.NewWatcher(watchOpts...)
	if err != nil {
		return err
	}
	defer watcher.Close()

	events, errs := watcher.Watch(ctx)

	// Output loop
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil // Channel closed
			}

			if err := OutputEvent(format, ev, os.Stdout); err != nil {
				return fmt.Errorf("output error: %w", err)
			}

		case err, ok := <-errs:
			if !ok {
				return nil // Channel closed
			}
			// Always output errors to stderr
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)

		case <-ctx.Done():
			return nil
		}
	}
}
