package q3log

import (
	"bufio"
	"context"
	"errors"
	"iter"
	"os"

	"github.com/q3log/q3log-go/internal/parser"
)

// ParseLine parses a single games.log line into an Event.
//
// Return values:
//   - (*Event, true): successfully decoded event
//   - (nil, false): the line is not a recognized event
//
// Malformed lines are indistinguishable from noise on purpose: server
// logs intersperse engine chatter, and any line that does not decode to
// a recognized shape is skipped rather than reported.
//
// Example:
//
//	line := "22:06 Kill: 2 3 7: Isgalamido killed Mocinha by MOD_ROCKET_SPLASH"
//	ev, ok := q3log.ParseLine(line)
//	if ok {
//	    kill := ev.Action.(event.Kill)
//	    fmt.Printf("%s fragged %s\n", kill.PlayerName, kill.VictimName)
//	}
func ParseLine(line string) (*Event, bool) {
	return parser.Parse(line)
}

// ParseFile parses a games.log file and returns an iterator over events.
// The file is opened lazily on first iteration, so the returned iterator
// is cheap to create but must be consumed to release resources.
//
// The iterator yields (Event, error) pairs. When an error occurs:
//   - File open errors: yields (Event{}, error) once and stops
//   - Read errors: yields (Event{}, error) and stops
//   - Context cancellation: yields (Event{}, ctx.Err()) and stops
//
// Lines that do not decode to a recognized event are skipped silently.
//
// Example:
//
//	for ev, err := range q3log.ParseFile(ctx, "games.log") {
//	    if err != nil {
//	        log.Printf("error: %v", err)
//	        break
//	    }
//	    fmt.Printf("event: %+v\n", ev)
//	}
func ParseFile(ctx context.Context, path string, opts ...ParseOption) iter.Seq2[Event, error] {
	// Validate path upfront
	if path == "" {
		return func(yield func(Event, error) bool) {
			yield(Event{}, errors.New("q3log: path required"))
		}
	}

	cfg := applyParseOptions(opts)

	return func(yield func(Event, error) bool) {
		// Lazy file open
		file, err := os.Open(path)
		if err != nil {
			yield(Event{}, err)
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		// Increase buffer size for long InitGame config lines
		buf := make([]byte, 0, 64*1024)
		scanner.Buffer(buf, 512*1024)

		for scanner.Scan() {
			// Context cancellation check
			if err := ctx.Err(); err != nil {
				yield(Event{}, err)
				return
			}

			line := scanner.Text()
			ev, ok := parser.Parse(line)
			if !ok {
				continue // Not a recognized event
			}

			// Apply action kind filter
			if !cfg.filter.Allows(ev.Kind()) {
				continue
			}

			// Include raw line if requested
			if cfg.includeRawLine {
				ev.RawLine = line
			}

			if !yield(*ev, nil) {
				return // Consumer requested stop (break)
			}
		}

		// Check for scanner errors
		if err := scanner.Err(); err != nil {
			yield(Event{}, err)
		}
	}
}

// ParseFileAll is a convenience function that parses a log file and collects
// all events into a slice. Stops on first error and returns events collected
// so far.
//
// For large files, consider using ParseFile directly to avoid loading all
// events into memory at once.
func ParseFileAll(ctx context.Context, path string, opts ...ParseOption) ([]Event, error) {
	seq := ParseFile(ctx, path, opts...)
	events := make([]Event, 0, 256)

	for ev, err := range seq {
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	return events, nil
}
