package q3log

import "log/slog"

// ParseOption configures ParseFile behavior using the functional
// options pattern.
type ParseOption func(*parseConfig)

// parseConfig holds internal configuration for parsing.
type parseConfig struct {
	filter         *compiledFilter
	includeRawLine bool
}

// defaultParseConfig returns a parseConfig with sensible defaults.
func defaultParseConfig() *parseConfig {
	return &parseConfig{}
}

// applyParseOptions applies functional options to a parseConfig.
func applyParseOptions(opts []ParseOption) *parseConfig {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithParseIncludeKinds filters events to only include the specified kinds.
// If called multiple times, only the last call takes effect.
func WithParseIncludeKinds(kinds ...ActionKind) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.include = make(map[ActionKind]struct{}, len(kinds))
		for _, k := range kinds {
			c.filter.include[k] = struct{}{}
		}
	}
}

// WithParseExcludeKinds filters out events of the specified kinds.
// Exclude takes precedence over include.
func WithParseExcludeKinds(kinds ...ActionKind) ParseOption {
	return func(c *parseConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.exclude = make(map[ActionKind]struct{}, len(kinds))
		for _, k := range kinds {
			c.filter.exclude[k] = struct{}{}
		}
	}
}

// WithParseFilter sets both include and exclude kind filters for parsing.
func WithParseFilter(include, exclude []ActionKind) ParseOption {
	return func(c *parseConfig) {
		c.filter = newCompiledFilter(include, exclude)
	}
}

// WithParseIncludeRawLine includes the original log line in Event.RawLine.
func WithParseIncludeRawLine(include bool) ParseOption {
	return func(c *parseConfig) {
		c.includeRawLine = include
	}
}

// WatchOption configures Watcher behavior using the functional
// options pattern.
type WatchOption func(*watchConfig)

// watchConfig holds internal configuration for the watcher.
type watchConfig struct {
	logFile        string
	fromStart      bool
	includeRawLine bool
	logger         *slog.Logger
	filter         *compiledFilter
}

// defaultWatchConfig returns a watchConfig with sensible defaults.
func defaultWatchConfig() *watchConfig {
	return &watchConfig{}
}

// applyWatchOptions applies functional options to a watchConfig.
func applyWatchOptions(opts []WatchOption) *watchConfig {
	cfg := defaultWatchConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogFile sets the games.log path to follow.
// If not set, auto-detects via the Q3LOG_FILE environment variable and
// default install locations.
func WithLogFile(path string) WatchOption {
	return func(c *watchConfig) {
		c.logFile = path
	}
}

// WithFromStart reads the whole file before following new lines.
// Default: start at the end (tail -f behavior).
func WithFromStart() WatchOption {
	return func(c *watchConfig) {
		c.fromStart = true
	}
}

// WithIncludeRawLine includes the original log line in Event.RawLine.
// Default: false.
func WithIncludeRawLine(include bool) WatchOption {
	return func(c *watchConfig) {
		c.includeRawLine = include
	}
}

// WithLogger sets the slog logger for debug output.
// If nil (default), logging is disabled.
func WithLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		c.logger = logger
	}
}

// WithIncludeKinds filters events to only include the specified kinds.
// If called multiple times, only the last call takes effect.
func WithIncludeKinds(kinds ...ActionKind) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.include = make(map[ActionKind]struct{}, len(kinds))
		for _, k := range kinds {
			c.filter.include[k] = struct{}{}
		}
	}
}

// WithExcludeKinds filters out events of the specified kinds.
// Exclude takes precedence over include.
func WithExcludeKinds(kinds ...ActionKind) WatchOption {
	return func(c *watchConfig) {
		if c.filter == nil {
			c.filter = &compiledFilter{}
		}
		c.filter.exclude = make(map[ActionKind]struct{}, len(kinds))
		for _, k := range kinds {
			c.filter.exclude[k] = struct{}{}
		}
	}
}

// WithFilter sets both include and exclude kind filters.
// Exclude takes precedence over include.
func WithFilter(include, exclude []ActionKind) WatchOption {
	return func(c *watchConfig) {
		c.filter = newCompiledFilter(include, exclude)
	}
}
