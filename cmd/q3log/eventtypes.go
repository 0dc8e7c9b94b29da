package main

import (
	"fmt"
	"strings"

	"github.com/q3log/q3log-go/pkg/q3log"
	"github.com/q3log/q3log-go/pkg/q3log/event"
)

// ValidEventTypes maps CLI string names to q3log.ActionKind.
// Used for both validation and normalization.
var ValidEventTypes = map[string]q3log.ActionKind{
	"init_game":               q3log.KindInitGame,
	"shutdown_game":           q3log.KindShutdownGame,
	"client_connect":          q3log.KindClientConnect,
	"client_userinfo_changed": q3log.KindClientUserinfoChanged,
	"client_begin":            q3log.KindClientBegin,
	"item":                    q3log.KindItem,
	"kill":                    q3log.KindKill,
	"client_disconnect":       q3log.KindClientDisconnect,
	"other":                   q3log.KindOther,
}

// ValidEventTypeNames returns a sorted list of valid event type names.
// Delegates to event.KindNames() as the single source of truth.
func ValidEventTypeNames() []string {
	return event.KindNames()
}

// NormalizeEventTypes converts CLI string values to q3log.ActionKind slice.
// It handles case-insensitivity, whitespace trimming, and duplicate removal.
func NormalizeEventTypes(values []string) ([]q3log.ActionKind, error) {
	if len(values) == 0 {
		return nil, nil
	}

	result := make([]q3log.ActionKind, 0, len(values))
	seen := make(map[q3log.ActionKind]struct{})

	for _, raw := range values {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			return nil, fmt.Errorf("empty event type provided (input: %q); valid types: %s", raw, strings.Join(ValidEventTypeNames(), ", "))
		}

		k, ok := ValidEventTypes[name]
		if !ok {
			return nil, fmt.Errorf("unknown event type %q (valid: %s)", raw, strings.Join(ValidEventTypeNames(), ", "))
		}

		if _, dup := seen[k]; dup {
			continue // ignore duplicates silently
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}

	return result, nil
}

// RejectOverlap returns an error if any event type is in both includes and excludes.
func RejectOverlap(includes, excludes []q3log.ActionKind) error {
	ex := make(map[q3log.ActionKind]struct{}, len(excludes))
	for _, k := range excludes {
		ex[k] = struct{}{}
	}
	for _, k := range includes {
		if _, ok := ex[k]; ok {
			return fmt.Errorf("event type %q cannot be both included and excluded", k)
		}
	}
	return nil
}
