package scan

import (
	"filescout/internal/infrastructure/logging"
)

// Scanner runs tree scans with shared defaults and a logger.
type Scanner struct {
	log *logging.Logger
}

// New creates a scanner. A nil logger is replaced with a no-op one.
func New(log *logging.Logger) *Scanner {
	if log == nil {
		log = logging.NewNop()
	}
	return &Scanner{log: log}
}
