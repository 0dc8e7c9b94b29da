// Package event defines the core Event and Action types for Quake 3 log parsing.
//
// This package is separated from the main q3log package to avoid import cycles
// between pkg/q3log and internal/parser.
package event

import (
	"encoding/json"
	"sort"
	"strings"
)

// World is the sentinel attacker name the server uses for environmental
// kills (lava, falling, trigger hurt). It parses like any other name but
// is excluded from player kill rankings.
const World = "<world>"

// Kind identifies the concrete Action variant carried by an Event.
type Kind string

const (
	// KindInitGame marks the start of a game session.
	KindInitGame Kind = "init_game"

	// KindShutdownGame marks the end of a game session.
	KindShutdownGame Kind = "shutdown_game"

	// KindClientConnect indicates a client connected to the server.
	KindClientConnect Kind = "client_connect"

	// KindClientUserinfoChanged indicates a client changed its userinfo
	// (name, model, and other backslash-delimited settings).
	KindClientUserinfoChanged Kind = "client_userinfo_changed"

	// KindClientBegin indicates a client entered the game world.
	KindClientBegin Kind = "client_begin"

	// KindItem indicates an item pickup.
	KindItem Kind = "item"

	// KindKill indicates a kill, by a player or by <world>.
	KindKill Kind = "kill"

	// KindClientDisconnect indicates a client disconnected.
	KindClientDisconnect Kind = "client_disconnect"

	// KindOther is the catch-all for recognized-shaped lines whose
	// keyword the decoder does not know.
	KindOther Kind = "other"
)

// allKinds is the canonical list of all action kinds.
// Add new kinds here when extending the decoder.
var allKinds = []Kind{
	KindInitGame,
	KindShutdownGame,
	KindClientConnect,
	KindClientUserinfoChanged,
	KindClientBegin,
	KindItem,
	KindKill,
	KindClientDisconnect,
	KindOther,
}

// KindNames returns a sorted list of all valid action kind names.
// This is the single source of truth for kind enumeration.
func KindNames() []string {
	names := make([]string, len(allKinds))
	for i, k := range allKinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	return names
}

// kindByName maps lowercase string names to Kind for efficient lookup.
// Built once from allKinds at package initialization.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(allKinds))
	for _, k := range allKinds {
		m[string(k)] = k
	}
	return m
}()

// ParseKind converts a string to Kind if valid.
// It is case-insensitive and trims leading/trailing whitespace.
// Returns the kind and true if found, zero value and false otherwise.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	k, ok := kindByName[name]
	return k, ok
}

// Action is the closed set of decoded log actions. Exactly one concrete
// type exists per Kind; consumers switch exhaustively over the variants.
type Action interface {
	Kind() Kind

	// isAction seals the interface so the variant set stays closed.
	isAction()
}

// InitGame is a session start marker carrying the raw server
// configuration string.
type InitGame struct {
	Details string `json:"details"`
}

// ShutdownGame is a session end marker. It has no payload.
type ShutdownGame struct{}

// ClientConnect records a client connecting.
type ClientConnect struct {
	PlayerID int `json:"player_id"`
}

// ClientUserinfoChanged records a client userinfo update. Info is the
// opaque backslash-delimited blob; the display name is embedded in it
// after the `n\` marker.
type ClientUserinfoChanged struct {
	PlayerID int    `json:"player_id"`
	Info     string `json:"info"`
}

// ClientBegin records a client entering the world.
type ClientBegin struct {
	PlayerID int `json:"player_id"`
}

// Item records an item pickup.
type Item struct {
	ItemID      int    `json:"item_id"`
	Description string `json:"description"`
}

// Kill records a kill. PlayerName may be the World sentinel for
// environmental kills; Method is the MOD_* cause-of-death code.
type Kill struct {
	KillID     int    `json:"kill_id"`
	PlayerID   int    `json:"player_id"`
	VictimID   int    `json:"victim_id"`
	PlayerName string `json:"player_name"`
	VictimName string `json:"victim_name"`
	Method     string `json:"method"`
}

// ClientDisconnect records a client disconnecting.
type ClientDisconnect struct {
	PlayerID int `json:"player_id"`
}

// Other carries any colon-terminated keyword the decoder does not
// recognize, with its trimmed payload.
type Other struct {
	ActionName string `json:"action_name"`
	Details    string `json:"details"`
}

func (InitGame) Kind() Kind              { return KindInitGame }
func (ShutdownGame) Kind() Kind          { return KindShutdownGame }
func (ClientConnect) Kind() Kind         { return KindClientConnect }
func (ClientUserinfoChanged) Kind() Kind { return KindClientUserinfoChanged }
func (ClientBegin) Kind() Kind           { return KindClientBegin }
func (Item) Kind() Kind                  { return KindItem }
func (Kill) Kind() Kind                  { return KindKill }
func (ClientDisconnect) Kind() Kind      { return KindClientDisconnect }
func (Other) Kind() Kind                 { return KindOther }

func (InitGame) isAction()              {}
func (ShutdownGame) isAction()          {}
func (ClientConnect) isAction()         {}
func (ClientUserinfoChanged) isAction() {}
func (ClientBegin) isAction()           {}
func (Item) isAction()                  {}
func (Kill) isAction()                  {}
func (ClientDisconnect) isAction()      {}
func (Other) isAction()                 {}

// Event represents one decoded log line.
type Event struct {
	// Timestamp is the raw clock value from the line (for example "20:34").
	// It is opaque text; event ordering is implied by file order alone.
	Timestamp string

	// Action is the decoded action variant.
	Action Action

	// RawLine is the original log line (only included if requested).
	RawLine string
}

// Kind returns the kind of the event's action.
func (e Event) Kind() Kind {
	if e.Action == nil {
		return ""
	}
	return e.Action.Kind()
}

// MarshalJSON flattens the event into a single object with a "type"
// discriminator, which keeps JSONL output greppable with jq.
func (e Event) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(e.Action)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Type      Kind            `json:"type"`
		Timestamp string          `json:"timestamp"`
		Action    json.RawMessage `json:"action"`
		RawLine   string          `json:"raw_line,omitempty"`
	}{
		Type:      e.Kind(),
		Timestamp: e.Timestamp,
		Action:    payload,
		RawLine:   e.RawLine,
	})
}
