package handler

import (
	"errors"

	"github.com/samacumen/MyGenericLogger/core"
)

// ErrClosed is returned by handlers that were written to after Close
var ErrClosed = errors.New("handler: closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes one log entry. The entry is not retained after
	// Handle returns.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their writes
type StatsProvider interface {
	Stats() Snapshot
}
