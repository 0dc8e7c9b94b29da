package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/q3log/q3log-go/internal/parser"
	"github.com/q3log/q3log-go/pkg/q3log"
	"github.com/q3log/q3log-go/pkg/q3log/event"
)

// ValidFormats lists the supported event output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputEvent writes an event to w in the requested format.
func OutputEvent(format string, ev q3log.Event, w io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(ev, w)
	case "pretty":
		return OutputPretty(ev, w)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes an event as a single JSON line.
func OutputJSON(ev q3log.Event, w io.Writer) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// OutputPretty writes an event in a human-readable single-line format.
func OutputPretty(ev q3log.Event, w io.Writer) error {
	var err error
	switch a := ev.Action.(type) {
	case event.InitGame:
		_, err = fmt.Fprintf(w, "%s > game started\n", ev.Timestamp)
	case event.ShutdownGame:
		_, err = fmt.Fprintf(w, "%s < game ended\n", ev.Timestamp)
	case event.ClientConnect:
		_, err = fmt.Fprintf(w, "%s + client %d connected\n", ev.Timestamp, a.PlayerID)
	case event.ClientUserinfoChanged:
		if name, ok := parser.PlayerName(a.Info); ok {
			_, err = fmt.Fprintf(w, "%s ~ client %d is now %q\n", ev.Timestamp, a.PlayerID, name)
		} else {
			_, err = fmt.Fprintf(w, "%s ~ client %d changed userinfo\n", ev.Timestamp, a.PlayerID)
		}
	case event.ClientBegin:
		_, err = fmt.Fprintf(w, "%s * client %d entered the game\n", ev.Timestamp, a.PlayerID)
	case event.Item:
		_, err = fmt.Fprintf(w, "%s i item %d: %s\n", ev.Timestamp, a.ItemID, a.Description)
	case event.Kill:
		_, err = fmt.Fprintf(w, "%s x %s killed %s by %s\n", ev.Timestamp, a.PlayerName, a.VictimName, a.Method)
	case event.ClientDisconnect:
		_, err = fmt.Fprintf(w, "%s - client %d disconnected\n", ev.Timestamp, a.PlayerID)
	case event.Other:
		_, err = fmt.Fprintf(w, "%s . %s %s\n", ev.Timestamp, a.ActionName, a.Details)
	default:
		_, err = fmt.Fprintf(w, "%s ? %s\n", ev.Timestamp, ev.Kind())
	}
	return err
}
