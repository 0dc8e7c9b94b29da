package q3log

import (
	"context"

	"github.com/q3log/q3log-go/pkg/q3log/event"
)

// Segmenter groups an ordered event stream into Game records and keeps
// running overall kill totals.
//
// At most one game is open at a time. InitGame opens a new game,
// force-closing any game still open (servers crash and restart without a
// clean shutdown line). ShutdownGame completes and finalizes the open
// game. Every other event is appended to the open game, or dropped when
// no game is open: events before the first InitGame belong to no session.
//
// A Segmenter is a plain value with no global state; independent parses
// can run side by side. It is not safe for concurrent use.
type Segmenter struct {
	games        []*Game
	current      *Game
	counter      int
	killsByMeans map[string]int
	killers      map[string]int
}

// NewSegmenter creates an empty segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		killsByMeans: make(map[string]int),
		killers:      make(map[string]int),
	}
}

// Feed advances the state machine by one event.
func (s *Segmenter) Feed(ev event.Event) {
	switch ev.Action.(type) {
	case event.InitGame:
		if s.current != nil {
			s.finalize(s.current)
		}
		s.counter++
		s.current = NewGame(s.counter)
		s.current.AddEvent(ev)

	case event.ShutdownGame:
		if s.current == nil {
			return
		}
		s.current.AddEvent(ev)
		s.finalize(s.current)
		s.current = nil

	default:
		if s.current == nil {
			return
		}
		s.current.AddEvent(ev)
	}
}

// Flush finalizes a still-open game at end of input. The game keeps
// Completed == false because it never saw a ShutdownGame marker.
// Safe to call when no game is open.
func (s *Segmenter) Flush() {
	if s.current == nil {
		return
	}
	s.finalize(s.current)
	s.current = nil
}

// finalize pushes a game into the finished list and folds its aggregates
// into the overall totals. Folding happens exactly once per game, here.
func (s *Segmenter) finalize(g *Game) {
	for method, count := range g.KillsByMeans {
		s.killsByMeans[method] += count
	}
	for killer, count := range g.Killers {
		s.killers[killer] += count
	}
	s.games = append(s.games, g)
}

// Games returns the finalized games in file order. Call Flush first when
// the input is exhausted, otherwise a trailing open game is missing.
func (s *Segmenter) Games() []*Game {
	return s.games
}

// KillsByMeans returns the overall kill tally per MOD_* cause code,
// summed over all finalized games.
func (s *Segmenter) KillsByMeans() map[string]int {
	return s.killsByMeans
}

// Killers returns the overall kill tally per attacker display name,
// summed over all finalized games. Never contains the <world> sentinel.
func (s *Segmenter) Killers() map[string]int {
	return s.killers
}

// AnalyzeFile parses a whole games.log and returns the flushed segmenter
// holding every game plus the overall totals.
//
// I/O failures are terminal and returned as-is; lines that do not decode
// are skipped like everywhere else.
func AnalyzeFile(ctx context.Context, path string, opts ...ParseOption) (*Segmenter, error) {
	seg := NewSegmenter()
	for ev, err := range ParseFile(ctx, path, opts...) {
		if err != nil {
			return nil, err
		}
		seg.Feed(ev)
	}
	seg.Flush()
	return seg, nil
}
