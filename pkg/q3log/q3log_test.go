package q3log_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/q3log/q3log-go/pkg/q3log"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind q3log.ActionKind
		wantSkip bool
	}{
		{
			name:     "client connect",
			input:    "20:34 ClientConnect: 2",
			wantKind: q3log.KindClientConnect,
		},
		{
			name:     "kill",
			input:    "22:06 Kill: 2 3 7: Isgalamido killed Mocinha by MOD_ROCKET_SPLASH",
			wantKind: q3log.KindKill,
		},
		{
			name:     "unrecognized line is skipped",
			input:    "some random text",
			wantSkip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := q3log.ParseLine(tt.input)

			if tt.wantSkip {
				if ok {
					t.Errorf("ParseLine() = %+v, want skip", got)
				}
				return
			}

			if !ok {
				t.Fatal("ParseLine() not recognized, want event")
			}
			if got.Kind() != tt.wantKind {
				t.Errorf("ParseLine().Kind() = %v, want %v", got.Kind(), tt.wantKind)
			}
		})
	}
}

func TestNewWatcher_MissingLogFile(t *testing.T) {
	_, err := q3log.NewWatcher(
		q3log.WithLogFile("/nonexistent/games.log"),
	)
	if err == nil {
		t.Fatal("NewWatcher() expected error for missing log file")
	}
	if !errors.Is(err, q3log.ErrLogFileNotFound) {
		t.Errorf("NewWatcher() error = %v, want %v", err, q3log.ErrLogFileNotFound)
	}
}

func TestWatcher_StreamsEvents(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "games.log")
	content := "0:00 InitGame: \\x\\1\n0:01 ClientConnect: 1\nnoise line\n0:02 Kill: 1 1 2: A killed B by MOD_GAUNTLET\n"
	if err := os.WriteFile(logFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := q3log.NewWatcher(
		q3log.WithLogFile(logFile),
		q3log.WithFromStart(),
	)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer watcher.Close()

	events, errs := watcher.Watch(ctx)

	wantKinds := []q3log.ActionKind{
		q3log.KindInitGame,
		q3log.KindClientConnect,
		q3log.KindKill,
	}
	for i, want := range wantKinds {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("events channel closed before event %d", i)
			}
			if ev.Kind() != want {
				t.Errorf("event %d: kind = %q, want %q", i, ev.Kind(), want)
			}
		case err := <-errs:
			t.Fatalf("unexpected error: %v", err)
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for event %d", i)
		}
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "games.log")
	if err := os.WriteFile(logFile, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	watcher, err := q3log.NewWatcher(q3log.WithLogFile(logFile))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := watcher.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := watcher.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWatch_Convenience(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "games.log")
	if err := os.WriteFile(logFile, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := q3log.Watch(ctx, q3log.WithLogFile(logFile))
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if events == nil {
		t.Error("Watch() events channel is nil")
	}
	if errs == nil {
		t.Error("Watch() errs channel is nil")
	}
}
