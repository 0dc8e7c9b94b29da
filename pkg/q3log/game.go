package q3log

import (
	"github.com/q3log/q3log-go/internal/parser"
	"github.com/q3log/q3log-go/pkg/q3log/event"
)

// Game is one bounded session of a games.log: the span of events between
// an InitGame marker and either a ShutdownGame marker, the next InitGame,
// or the end of input.
//
// Aggregates are maintained incrementally as events are added; they are
// never recomputed by rescanning Events.
type Game struct {
	// ID is 1-based and assigned in file order by the Segmenter.
	ID int

	// Events holds every event of the session, in file order.
	Events []event.Event

	// InitDetails is the raw server configuration string from InitGame.
	InitDetails string

	// Completed reports whether the session received its ShutdownGame
	// marker. A game force-closed by a following InitGame, or flushed at
	// end of input, stays incomplete.
	Completed bool

	// KillsByMeans counts kills per MOD_* cause code, including
	// environmental kills by <world>.
	KillsByMeans map[string]int

	// Killers counts kills per attacker display name. The <world>
	// sentinel never appears here.
	Killers map[string]int
}

// NewGame creates an empty game with the given id.
func NewGame(id int) *Game {
	return &Game{
		ID:           id,
		KillsByMeans: make(map[string]int),
		Killers:      make(map[string]int),
	}
}

// AddEvent appends an event and updates the game's aggregates.
func (g *Game) AddEvent(ev event.Event) {
	switch a := ev.Action.(type) {
	case event.InitGame:
		g.InitDetails = a.Details
	case event.ShutdownGame:
		g.Completed = true
	case event.Kill:
		g.KillsByMeans[a.Method]++
		if a.PlayerName != event.World {
			g.Killers[a.PlayerName]++
		}
	}
	g.Events = append(g.Events, ev)
}

// Players derives the id-to-display-name mapping from the game's
// ClientUserinfoChanged events. Later userinfo updates win. Events whose
// info blob carries no extractable name are left out.
func (g *Game) Players() map[int]string {
	players := make(map[int]string)
	for _, ev := range g.Events {
		info, ok := ev.Action.(event.ClientUserinfoChanged)
		if !ok {
			continue
		}
		if name, ok := parser.PlayerName(info.Info); ok {
			players[info.PlayerID] = name
		}
	}
	return players
}

// Kills returns the subsequence of events that are Kill actions.
func (g *Game) Kills() []event.Event {
	var kills []event.Event
	for _, ev := range g.Events {
		if ev.Kind() == event.KindKill {
			kills = append(kills, ev)
		}
	}
	return kills
}
