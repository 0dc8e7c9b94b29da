package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/q3log/q3log-go/pkg/q3log"
)

var (
	// report flags
	reportLogFile string
	reportTop     int
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Summarize the games in a games.log file",
	Long: `Parse a games.log file, reconstruct the individual games, and print
per-game and overall kill statistics.

Each InitGame line starts a new game; a ShutdownGame line completes
it. Kills by <world> count toward the death-cause totals but never
toward a player's score.

Examples:
  # Report on the auto-detected games.log
  q3log report

  # Report on a specific file
  q3log report /var/quake3/baseq3/games.log

  # Only show the top 3 players in the ranking
  q3log report --top 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportLogFile, "log-file", "l", "",
		"games.log path (auto-detected if not specified)")
	reportCmd.Flags().IntVarP(&reportTop, "top", "n", 0,
		"Limit the player ranking to the top N players (0 = all)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := resolveLogFile(args, reportLogFile, cfg)
	if err != nil {
		return err
	}

	top := reportTop
	if top == 0 {
		top = cfg.TopKillers
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seg, err := q3log.AnalyzeFile(ctx, logFile)
	if err != nil {
		return err
	}

	return writeReport(os.Stdout, seg, top)
}

// writeReport prints per-game sections, overall totals, and the
// player ranking.
func writeReport(w io.Writer, seg *q3log.Segmenter, top int) error {
	games := seg.Games()

	for _, game := range games {
		status := "completed"
		if !game.Completed {
			status = "incomplete"
		}
		fmt.Fprintf(w, "=== Game %d (%s) ===\n", game.ID, status)
		fmt.Fprintf(w, "Events: %d  Kills: %d\n", len(game.Events), len(game.Kills()))

		if names := playerNames(game); len(names) > 0 {
			fmt.Fprint(w, "Players:")
			for _, name := range names {
				fmt.Fprintf(w, " %s", name)
			}
			fmt.Fprintln(w)
		}

		writeTallies(w, "Kills by player:", q3log.SortedTallies(game.Killers))
		writeTallies(w, "Kills by means:", q3log.SortedTallies(game.KillsByMeans))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "=== Overall (%d games) ===\n", len(games))
	writeTallies(w, "Kills by means:", q3log.SortedTallies(seg.KillsByMeans()))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Player ranking ===")
	ranking := q3log.SortedTallies(seg.Killers())
	if top > 0 && len(ranking) > top {
		ranking = ranking[:top]
	}
	if len(ranking) == 0 {
		fmt.Fprintln(w, "(no kills recorded)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, tally := range ranking {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", rankLabel(i+1), tally.Name, tally.Count)
	}
	return tw.Flush()
}

// writeTallies prints a titled, indented tally table. Nothing is
// printed when the tallies are empty.
func writeTallies(w io.Writer, title string, tallies []q3log.Tally) {
	if len(tallies) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, tally := range tallies {
		fmt.Fprintf(tw, "  %s\t%d\n", tally.Name, tally.Count)
	}
	tw.Flush()
}

// playerNames returns the game's player names sorted alphabetically.
func playerNames(game *q3log.Game) []string {
	players := game.Players()
	names := make([]string, 0, len(players))
	for _, name := range players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rankLabel formats a 1-based rank as an ordinal (1st, 2nd, 3rd, 4th...).
func rankLabel(rank int) string {
	suffix := "th"
	if rank%100 < 11 || rank%100 > 13 {
		switch rank % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(rank) + suffix
}
