package q3log

import "github.com/q3log/q3log-go/pkg/q3log/event"

// Re-export event types for convenience.
// Users can import just "github.com/q3log/q3log-go/pkg/q3log"
// and use q3log.Event, q3log.KindKill, etc.

// Event represents one decoded log line.
type Event = event.Event

// Action is the closed set of decoded log actions.
type Action = event.Action

// ActionKind identifies the concrete Action variant carried by an Event.
type ActionKind = event.Kind

// World is the sentinel attacker name for environmental kills.
const World = event.World

// Action kind constants.
const (
	KindInitGame              = event.KindInitGame
	KindShutdownGame          = event.KindShutdownGame
	KindClientConnect         = event.KindClientConnect
	KindClientUserinfoChanged = event.KindClientUserinfoChanged
	KindClientBegin           = event.KindClientBegin
	KindItem                  = event.KindItem
	KindKill                  = event.KindKill
	KindClientDisconnect      = event.KindClientDisconnect
	KindOther                 = event.KindOther
)
