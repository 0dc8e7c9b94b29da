package q3log_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/q3log/q3log-go/pkg/q3log"
	"github.com/q3log/q3log-go/pkg/q3log/event"
)

// ExampleParseLine demonstrates parsing a single log line.
func ExampleParseLine() {
	line := "22:06 Kill: 2 3 7: Isgalamido killed Mocinha by MOD_ROCKET_SPLASH"

	ev, ok := q3log.ParseLine(line)
	if !ok {
		// Line doesn't match any known event shape
		fmt.Println("not a recognized event")
		return
	}

	kill := ev.Action.(event.Kill)
	fmt.Printf("Timestamp: %s\n", ev.Timestamp)
	fmt.Printf("Attacker: %s\n", kill.PlayerName)
	fmt.Printf("Method: %s\n", kill.Method)
	// Output:
	// Timestamp: 22:06
	// Attacker: Isgalamido
	// Method: MOD_ROCKET_SPLASH
}

// ExampleSegmenter demonstrates feeding events through the game
// segmenter by hand.
func ExampleSegmenter() {
	lines := []string{
		"0:00 InitGame: \\sv_hostname\\Example",
		"0:01 Kill: 1 2 3: Alice killed Bob by MOD_RAILGUN",
		"0:02 ShutdownGame:",
	}

	seg := q3log.NewSegmenter()
	for _, line := range lines {
		if ev, ok := q3log.ParseLine(line); ok {
			seg.Feed(*ev)
		}
	}
	seg.Flush()

	for _, game := range seg.Games() {
		fmt.Printf("game %d: completed=%v kills=%d\n",
			game.ID, game.Completed, len(game.Kills()))
	}
	// Output:
	// game 1: completed=true kills=1
}

// ExampleAnalyzeFile demonstrates whole-file analysis.
func ExampleAnalyzeFile() {
	ctx := context.Background()

	seg, err := q3log.AnalyzeFile(ctx, "games.log")
	if err != nil {
		log.Printf("analyze: %v", err)
		return
	}

	for _, tally := range q3log.SortedTallies(seg.Killers()) {
		fmt.Printf("%s: %d kills\n", tally.Name, tally.Count)
	}
}

// ExampleWatch demonstrates following a live games.log.
func ExampleWatch() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := q3log.Watch(ctx,
		q3log.WithIncludeKinds(q3log.KindKill),
	)
	if err != nil {
		log.Fatal(err)
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			kill := ev.Action.(event.Kill)
			fmt.Printf("%s fragged %s\n", kill.PlayerName, kill.VictimName)
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}

// Example_errorsIs demonstrates checking sentinel errors with errors.Is.
func Example_errorsIs() {
	err := fmt.Errorf("failed to start watcher: %w", q3log.ErrLogFileNotFound)

	if errors.Is(err, q3log.ErrLogFileNotFound) {
		fmt.Println("games.log not found")
	}
	// Output: games.log not found
}
