package q3log

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/q3log/q3log-go/internal/logfinder"
	"github.com/q3log/q3log-go/internal/parser"
	"github.com/q3log/q3log-go/internal/tailer"
)

// Watcher follows a live games.log and streams decoded events.
//
// It deliberately does not reconstruct games: segmentation needs the
// whole file, so game analysis stays batch-only (see AnalyzeFile). The
// watcher is for dashboards and notification tooling that reacts to
// single events as the server writes them.
type Watcher struct {
	cfg     *watchConfig
	logFile string

	mu       sync.Mutex
	closed   bool
	cancel   context.CancelFunc
	doneCh   chan struct{}
	watching bool
}

// NewWatcher creates a watcher.
// Validates options and resolves the log file path.
// Does NOT start goroutines (cheap to call).
func NewWatcher(opts ...WatchOption) (*Watcher, error) {
	cfg := applyWatchOptions(opts)

	logFile, err := logfinder.FindLogFile(cfg.logFile)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		cfg:     cfg,
		logFile: logFile,
	}, nil
}

// Watch starts watching and returns channels.
// Starts internal goroutines here.
// Both channels close on ctx.Done() or fatal error.
// Watch can only be called once per Watcher instance.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, <-chan error) {
	w.mu.Lock()
	if w.closed || w.watching {
		w.mu.Unlock()
		// Return closed channels if already closed or watching
		eventCh := make(chan Event)
		errCh := make(chan error)
		close(eventCh)
		close(errCh)
		return eventCh, errCh
	}
	w.watching = true

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	eventCh := make(chan Event)
	errCh := make(chan error)

	go w.run(ctx, eventCh, errCh)

	return eventCh, errCh
}

// Close stops the watcher and releases resources.
// Safe to call multiple times.
// Blocks until the goroutine has exited.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true

	if w.cancel != nil {
		w.cancel()
	}
	doneCh := w.doneCh
	w.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, eventCh chan<- Event, errCh chan<- error) {
	defer close(w.doneCh)
	defer close(eventCh)
	defer close(errCh)

	cfg := tailer.DefaultConfig()
	cfg.FromStart = w.cfg.fromStart

	t, err := tailer.New(ctx, w.logFile, cfg)
	if err != nil {
		sendError(errCh, fmt.Errorf("starting tailer: %w", err))
		return
	}
	defer func() { _ = t.Stop() }()

	w.logDebug("watching log file", slog.String("path", w.logFile))

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines():
			if !ok {
				return
			}
			w.processLine(ctx, line, eventCh)
		case err, ok := <-t.Errors():
			if !ok {
				return
			}
			sendError(errCh, err)
		}
	}
}

func (w *Watcher) processLine(ctx context.Context, line string, eventCh chan<- Event) {
	ev, ok := parser.Parse(line)
	if !ok {
		return // Not a recognized event
	}

	if !w.cfg.filter.Allows(ev.Kind()) {
		return
	}

	if w.cfg.includeRawLine {
		ev.RawLine = line
	}

	select {
	case eventCh <- *ev:
	case <-ctx.Done():
	}
}

func (w *Watcher) logDebug(msg string, args ...any) {
	if w.cfg.logger != nil {
		w.cfg.logger.Debug(msg, args...)
	}
}

// sendError sends an error non-blocking.
func sendError(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
		// Drop error if channel is full
	}
}

// Watch is a convenience function that creates a watcher and starts
// watching. Returns an error immediately for initialization failures.
func Watch(ctx context.Context, opts ...WatchOption) (<-chan Event, <-chan error, error) {
	w, err := NewWatcher(opts...)
	if err != nil {
		return nil, nil, err
	}
	events, errs := w.Watch(ctx)
	return events, errs, nil
}
