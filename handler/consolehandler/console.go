package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/formatter"
	"github.com/samacumen/MyGenericLogger/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// ConsoleHandler writes one line per entry to a writer
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)
	return h
}

// Handle formats the entry and writes it as one line
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.bufferFormatter == nil {
		data, err := h.formatter.Format(entry)
		if err != nil {
			h.stats.IncrementFailed()
			return err
		}
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.writeLocked(data)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	h.bufferFormatter.FormatEntry(entry, &h.buf)
	return h.writeLocked(h.buf.Bytes())
}

func (h *ConsoleHandler) writeLocked(data []byte) error {
	n, err := h.writer.Write(data)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementWritten(n)
	return nil
}

// Writer returns the underlying writer
func (h *ConsoleHandler) Writer() io.Writer {
	return h.writer
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the console writer is owned by the caller
func (h *ConsoleHandler) Close() error {
	return nil
}
