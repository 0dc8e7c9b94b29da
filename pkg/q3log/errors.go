package q3log

import "github.com/q3log/q3log-go/internal/logfinder"

// Sentinel errors returned by this package.
var (
	// ErrLogFileNotFound is returned when no games.log can be found
	// or accessed.
	ErrLogFileNotFound = logfinder.ErrLogFileNotFound
)
