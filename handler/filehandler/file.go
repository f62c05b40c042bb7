package filehandler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasttemplate"
	"go.uber.org/multierr"

	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/formatter"
	"github.com/samacumen/MyGenericLogger/handler"
)

// Placeholders recognized in FileConfig.Filename
const (
	TmplPID  = "pid"
	TmplDate = "date"
	TmplApp  = "app"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// AppName replaces the {{app}} placeholder (default: executable name)
	AppName string
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
}

// FileHandler appends one line per entry to a file
type FileHandler struct {
	filename        string
	file            *os.File
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects file, buf, currentSize and closed
	buf             bytes.Buffer
	currentSize     int64
	closed          bool
}

// ExpandFilename replaces the {{pid}}, {{date}} and {{app}} placeholders
func ExpandFilename(name, app string, now time.Time) string {
	if !strings.Contains(name, "{{") {
		return name
	}
	if app == "" {
		app = filepath.Base(os.Args[0])
	}
	return fasttemplate.ExecuteStringStd(name, "{{", "}}", map[string]interface{}{
		TmplPID:  strconv.Itoa(os.Getpid()),
		TmplDate: now.Format("2006-01-02"),
		TmplApp:  app,
	})
}

// NewFileHandler opens the log file and creates a new file handler
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}

	filename := ExpandFilename(cfg.Filename, cfg.AppName, time.Now())

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("stat log file: %w", err), file.Close())
	}

	h := &FileHandler{
		filename:    filename,
		file:        file,
		formatter:   cfg.Formatter,
		stats:       handler.NewStats(),
		currentSize: info.Size(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h, nil
}

// Handle formats the entry and appends it as one line
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		h.stats.IncrementFailed()
		return handler.ErrClosed
	}

	var data []byte
	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		data = h.buf.Bytes()
	} else {
		var err error
		if data, err = h.formatter.Format(entry); err != nil {
			h.stats.IncrementFailed()
			return err
		}
	}

	n, err := h.file.Write(data)
	h.currentSize += int64(n)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementWritten(n)
	return nil
}

// Filename returns the expanded path of the log file
func (h *FileHandler) Filename() string {
	return h.filename
}

// Size returns the current size of the log file in bytes
func (h *FileHandler) Size() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentSize
}

// Sync commits the file contents to stable storage
func (h *FileHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return handler.ErrClosed
	}
	return h.file.Sync()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the file. Calling Close again is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	return multierr.Append(h.file.Sync(), h.file.Close())
}

// Closed reports whether Close has been called
func (h *FileHandler) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
