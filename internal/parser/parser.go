// Package parser turns raw Quake 3 server log lines into typed events.
//
// The server prefixes every event line with a minute:second clock value,
// then an action keyword terminated by a colon, then a free-form payload:
//
//	20:34 ClientConnect: 2
//	22:06 Kill: 2 3 7: Isgalamido killed Mocinha by MOD_ROCKET_SPLASH
//
// Lines that do not match this shape (blank separators, dashes, engine
// chatter without a timestamp) are not errors; they are skipped.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/q3log/q3log-go/pkg/q3log/event"
)

var (
	// lineRe strips the leading clock value: one or two digits, a colon,
	// exactly two digits, then the action content.
	lineRe = regexp.MustCompile(`^(\d{1,2}:\d{2})\s+(.+)$`)

	// killRe matches the kill description. Non-greedy names so the first
	// "killed" and the first following "by" act as separators.
	killRe = regexp.MustCompile(`^(.+?)\s+killed\s+(.+?)\s+by\s+(.+)$`)

	// nameRe pulls the display name out of a userinfo blob: everything
	// between the `n\` marker and the next backslash.
	nameRe = regexp.MustCompile(`n\\([^\\]+)`)
)

// Parse parses a single log line.
//
// Return values:
//   - (*Event, true): the line decoded to a recognized event
//   - (nil, false): the line is noise or malformed; skip it
//
// There is no error return on purpose: real server logs intersperse
// engine output that is not meaningful here, and the caller treats any
// non-decodable line the same way.
func Parse(line string) (*event.Event, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	action, ok := parseAction(m[2])
	if !ok {
		return nil, false
	}

	return &event.Event{Timestamp: m[1], Action: action}, true
}

// parseAction dispatches on the action keyword prefix, first match wins.
// A matched prefix with a malformed payload drops the line; it never
// falls through to a later case.
func parseAction(content string) (event.Action, bool) {
	switch {
	case strings.HasPrefix(content, "InitGame:"):
		details := strings.TrimSpace(strings.TrimPrefix(content, "InitGame:"))
		return event.InitGame{Details: details}, true

	case content == "ShutdownGame:":
		return event.ShutdownGame{}, true

	case strings.HasPrefix(content, "ClientConnect:"):
		id, ok := parseID(strings.TrimPrefix(content, "ClientConnect:"))
		if !ok {
			return nil, false
		}
		return event.ClientConnect{PlayerID: id}, true

	case strings.HasPrefix(content, "ClientUserinfoChanged:"):
		id, info, ok := parseIDAndRest(strings.TrimPrefix(content, "ClientUserinfoChanged:"))
		if !ok {
			return nil, false
		}
		return event.ClientUserinfoChanged{PlayerID: id, Info: info}, true

	case strings.HasPrefix(content, "ClientBegin:"):
		id, ok := parseID(strings.TrimPrefix(content, "ClientBegin:"))
		if !ok {
			return nil, false
		}
		return event.ClientBegin{PlayerID: id}, true

	case strings.HasPrefix(content, "ClientDisconnect:"):
		id, ok := parseID(strings.TrimPrefix(content, "ClientDisconnect:"))
		if !ok {
			return nil, false
		}
		return event.ClientDisconnect{PlayerID: id}, true

	case strings.HasPrefix(content, "Item:"):
		id, desc, ok := parseIDAndRest(strings.TrimPrefix(content, "Item:"))
		if !ok {
			return nil, false
		}
		return event.Item{ItemID: id, Description: desc}, true

	case strings.HasPrefix(content, "Kill:"):
		return parseKill(strings.TrimSpace(strings.TrimPrefix(content, "Kill:")))
	}

	// Catch-all: any other colon-terminated keyword becomes Other.
	// No colon at all means the line is not an event.
	if i := strings.Index(content, ":"); i >= 0 {
		return event.Other{
			ActionName: content[:i],
			Details:    strings.TrimSpace(content[i+1:]),
		}, true
	}
	return nil, false
}

// parseKill decodes the payload after "Kill:": an ids section, a colon,
// then "<attacker> killed <victim> by <method>".
func parseKill(details string) (event.Action, bool) {
	idsPart, descPart, found := strings.Cut(details, ":")
	if !found {
		return nil, false
	}

	ids := strings.Fields(idsPart)
	if len(ids) != 3 {
		return nil, false
	}

	killID, ok := parseID(ids[0])
	if !ok {
		return nil, false
	}
	playerID, ok := parseID(ids[1])
	if !ok {
		return nil, false
	}
	victimID, ok := parseID(ids[2])
	if !ok {
		return nil, false
	}

	m := killRe.FindStringSubmatch(strings.TrimSpace(descPart))
	if m == nil {
		return nil, false
	}

	return event.Kill{
		KillID:     killID,
		PlayerID:   playerID,
		VictimID:   victimID,
		PlayerName: m[1],
		VictimName: m[2],
		Method:     m[3],
	}, true
}

// PlayerName extracts the display name from a userinfo blob.
// Returns false if the `n\` marker is absent or names nothing.
func PlayerName(userinfo string) (string, bool) {
	m := nameRe.FindStringSubmatch(userinfo)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// parseID parses an unsigned numeric field. Overflow past 32 bits and
// any non-digit input are decode failures.
func parseID(s string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseIDAndRest splits a payload into a leading unsigned id and the
// verbatim remainder after the first space.
func parseIDAndRest(s string) (int, string, bool) {
	s = strings.TrimSpace(s)
	idStr, rest, found := strings.Cut(s, " ")
	if !found {
		return 0, "", false
	}
	id, ok := parseID(idStr)
	if !ok {
		return 0, "", false
	}
	return id, rest, true
}
