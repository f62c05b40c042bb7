package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/formatter"
	"github.com/samacumen/MyGenericLogger/handler"
	"github.com/samacumen/MyGenericLogger/handler/consolehandler"
	"github.com/samacumen/MyGenericLogger/handler/filehandler"
)

// DefaultLogFile is the file written by a logger built without WithFile
const DefaultLogFile = "MyLogFile.log"

// ErrUnknownDestination is returned by SetDestination for undefined values
var ErrUnknownDestination = errors.New("logger: unknown destination")

// Logger writes leveled, persistent and raw lines to the console or a
// file. The threshold and destination can be changed at any time; every
// write to a sink happens while holding the logger's mutex.
type Logger struct {
	level       atomic.Int32
	destination atomic.Int32

	mu      sync.Mutex // serializes sink writes and guards file
	console *consolehandler.ConsoleHandler
	file    *filehandler.FileHandler
	fileCfg filehandler.FileConfig
	retired handler.Snapshot // counters of file handlers closed and reopened

	clock core.Clock
	stats *handler.Stats
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level       core.Level
	destination core.Destination
	filename    string
	appName     string
	console     io.Writer
	formatter   formatter.Formatter
	clock       core.Clock
}

// NewBuilder creates a new logger builder. The defaults are the trace
// threshold and the file destination writing MyLogFile.log.
func NewBuilder() *Builder {
	return &Builder{
		level:       core.TraceLevel,
		destination: core.FileDestination,
		filename:    DefaultLogFile,
	}
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithDestination sets the initial destination
func (b *Builder) WithDestination(d core.Destination) *Builder {
	b.destination = d
	return b
}

// WithFile sets the log file path. The path may contain {{pid}}, {{date}}
// and {{app}} placeholders.
func (b *Builder) WithFile(path string) *Builder {
	b.filename = path
	return b
}

// WithAppName sets the value of the {{app}} placeholder
func (b *Builder) WithAppName(name string) *Builder {
	b.appName = name
	return b
}

// WithConsole sets the console writer (default: os.Stdout)
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = w
	return b
}

// WithFormatter sets the line formatter used by both sinks
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithClock sets the clock used to timestamp entries
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// Build creates the Logger. The log file is opened only when the file
// destination is selected; Build fails if it cannot be opened.
func (b *Builder) Build() (*Logger, error) {
	f := b.formatter
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	clock := b.clock
	if clock == nil {
		clock = core.SystemClock
	}

	l := &Logger{
		console: consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    b.console,
			Formatter: f,
		}),
		fileCfg: filehandler.FileConfig{
			Filename:  b.filename,
			Formatter: f,
			AppName:   b.appName,
		},
		clock: clock,
		stats: handler.NewStats(),
	}
	l.level.Store(int32(b.level))
	if err := l.SetDestination(b.destination); err != nil {
		return nil, err
	}
	return l, nil
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the threshold; it takes effect for the next call
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// EnableAll sets the threshold to AllLevel
func (l *Logger) EnableAll() {
	l.SetLevel(core.AllLevel)
}

// Disable sets the threshold to DisableLevel. Always calls still write.
func (l *Logger) Disable() {
	l.SetLevel(core.DisableLevel)
}

// Destination returns the active destination
func (l *Logger) Destination() core.Destination {
	return core.Destination(l.destination.Load())
}

// SetDestination redirects subsequent lines. Selecting the file opens it
// on first use, or reopens it in append mode after Close; if that fails
// the destination is left unchanged.
func (l *Logger) SetDestination(d core.Destination) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch d {
	case core.NoDestination, core.ConsoleDestination:
	case core.FileDestination:
		if l.file == nil || l.file.Closed() {
			fh, err := filehandler.NewFileHandler(l.fileCfg)
			if err != nil {
				return fmt.Errorf("logger: open log file: %w", err)
			}
			if l.file != nil {
				l.retired = l.retired.Add(l.file.Stats())
			}
			l.file = fh
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownDestination, d)
	}

	l.destination.Store(int32(d))
	return nil
}

// Filename returns the path of the log file, or "" if it was never opened
func (l *Logger) Filename() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ""
	}
	return l.file.Filename()
}

// sinkLocked returns the handler for the active destination
func (l *Logger) sinkLocked() handler.Handler {
	switch l.Destination() {
	case core.ConsoleDestination:
		return l.console
	case core.FileDestination:
		if l.file != nil {
			return l.file
		}
	}
	return nil
}

// write hands one line to the active sink. Sink errors are counted by
// the sink itself.
func (l *Logger) write(level core.Level, kind core.Kind, o Origin, msg string) {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = l.clock.Now()
	entry.Level = level
	entry.Kind = kind
	entry.Scope = o.Scope
	entry.Function = o.Function
	entry.Message = msg

	l.mu.Lock()
	defer l.mu.Unlock()

	if h := l.sinkLocked(); h != nil {
		_ = h.Handle(entry)
	}
}

// recoverFailure must be deferred directly by the entry points that run
// caller code (Stringers, formatters).
func (l *Logger) recoverFailure() {
	if r := recover(); r != nil {
		l.stats.IncrementFailed()
	}
}

func (l *Logger) log(level core.Level, o Origin, msg string) {
	if !level.Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(level, core.Leveled, o, msg)
}

func (l *Logger) logv(level core.Level, o Origin, values []interface{}) {
	if !level.Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(level, core.Leveled, o, formatter.Values(values...))
}

func (l *Logger) logf(level core.Level, o Origin, format string, args []interface{}) {
	if !level.Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(level, core.Leveled, o, fmt.Sprintf(format, args...))
}

// Fatal logs a fatal message. It does not exit the process.
func (l *Logger) Fatal(o Origin, msg string) { l.log(core.FatalLevel, o, msg) }

// Error logs an error message
func (l *Logger) Error(o Origin, msg string) { l.log(core.ErrorLevel, o, msg) }

// Warning logs a warning message
func (l *Logger) Warning(o Origin, msg string) { l.log(core.WarningLevel, o, msg) }

// Info logs an info message
func (l *Logger) Info(o Origin, msg string) { l.log(core.InfoLevel, o, msg) }

// Debug logs a debug message
func (l *Logger) Debug(o Origin, msg string) { l.log(core.DebugLevel, o, msg) }

// Trace logs a trace message
func (l *Logger) Trace(o Origin, msg string) { l.log(core.TraceLevel, o, msg) }

// Fatalv logs the values at fatal level, each rendered as " value,"
func (l *Logger) Fatalv(o Origin, values ...interface{}) { l.logv(core.FatalLevel, o, values) }

// Errorv logs the values at error level
func (l *Logger) Errorv(o Origin, values ...interface{}) { l.logv(core.ErrorLevel, o, values) }

// Warningv logs the values at warning level
func (l *Logger) Warningv(o Origin, values ...interface{}) { l.logv(core.WarningLevel, o, values) }

// Infov logs the values at info level
func (l *Logger) Infov(o Origin, values ...interface{}) { l.logv(core.InfoLevel, o, values) }

// Debugv logs the values at debug level
func (l *Logger) Debugv(o Origin, values ...interface{}) { l.logv(core.DebugLevel, o, values) }

// Tracev logs the values at trace level
func (l *Logger) Tracev(o Origin, values ...interface{}) { l.logv(core.TraceLevel, o, values) }

// Fatalf logs a fatal message with formatting. It does not exit the process.
func (l *Logger) Fatalf(o Origin, format string, args ...interface{}) {
	l.logf(core.FatalLevel, o, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(o Origin, format string, args ...interface{}) {
	l.logf(core.ErrorLevel, o, format, args)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(o Origin, format string, args ...interface{}) {
	l.logf(core.WarningLevel, o, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(o Origin, format string, args ...interface{}) {
	l.logf(core.InfoLevel, o, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(o Origin, format string, args ...interface{}) {
	l.logf(core.DebugLevel, o, format, args)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(o Origin, format string, args ...interface{}) {
	l.logf(core.TraceLevel, o, format, args)
}

// Always writes msg regardless of the threshold. The line has no
// separator between the origin and the text.
func (l *Logger) Always(o Origin, msg string) {
	defer l.recoverFailure()
	l.write(core.AlwaysLevel, core.Persistent, o, msg)
}

// Alwaysv writes the values regardless of the threshold
func (l *Logger) Alwaysv(o Origin, values ...interface{}) {
	defer l.recoverFailure()
	l.write(core.AlwaysLevel, core.Persistent, o, formatter.Values(values...))
}

// Alwaysf writes a formatted message regardless of the threshold
func (l *Logger) Alwaysf(o Origin, format string, args ...interface{}) {
	defer l.recoverFailure()
	l.write(core.AlwaysLevel, core.Persistent, o, fmt.Sprintf(format, args...))
}

// Buffer writes text verbatim followed by a newline when the threshold
// is BufferLevel or above. No timestamp, tag or origin is added.
func (l *Logger) Buffer(text string) {
	if !core.BufferLevel.Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(core.BufferLevel, core.Raw, Origin{}, text)
}

// BufferBlock writes the text of a block such as a hex dump
func (l *Logger) BufferBlock(block fmt.Stringer) {
	if !core.BufferLevel.Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(core.BufferLevel, core.Raw, Origin{}, block.String())
}

// BufferBytes writes p verbatim
func (l *Logger) BufferBytes(p []byte) {
	if !core.BufferLevel.Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(core.BufferLevel, core.Raw, Origin{}, string(p))
}

// Bufferv writes the values rendered as " value," with no prefix
func (l *Logger) Bufferv(values ...interface{}) {
	if !core.BufferLevel.Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(core.BufferLevel, core.Raw, Origin{}, formatter.Values(values...))
}

// Message starts a message that is built with Append and written by Emit
func (l *Logger) Message(level core.Level, o Origin) *formatter.Message {
	return formatter.NewMessage(level, o.Scope, o.Function)
}

// Emit writes m if its level passes the threshold and releases it
func (l *Logger) Emit(m *formatter.Message) {
	defer m.Release()
	if m.Kind() != core.Persistent && !m.Level().Enabled(l.Level()) {
		return
	}
	defer l.recoverFailure()
	l.write(m.Level(), m.Kind(), Origin{Scope: m.Scope(), Function: m.Function()}, m.Body())
}

// Handle writes an entry built elsewhere, such as by the slog or zap
// adapters. Leveled entries are filtered against the threshold.
func (l *Logger) Handle(entry *core.Entry) error {
	if entry.Kind == core.Leveled && !entry.Level.Enabled(l.Level()) {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	h := l.sinkLocked()
	if h == nil {
		return nil
	}
	return h.Handle(entry)
}

// Slog returns a *slog.Logger that writes through l
func (l *Logger) Slog() *slog.Logger {
	return slog.New(handler.NewSlogHandler(l, l))
}

// Zap returns a *zap.Logger that writes through l
func (l *Logger) Zap() *zap.Logger {
	return zap.New(handler.NewZapCore(l, l), zap.AddCaller())
}

// Stats returns the combined counters of both sinks. Recovered panics
// are counted as failures.
func (l *Logger) Stats() handler.Snapshot {
	s := l.stats.GetSnapshot().Add(l.console.Stats())

	l.mu.Lock()
	defer l.mu.Unlock()
	s = s.Add(l.retired)
	if l.file != nil {
		s = s.Add(l.file.Stats())
	}
	return s
}

// Close syncs and closes the log file. Later file writes are counted as
// failures until SetDestination(FileDestination) reopens it. Calling
// Close again is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.console.Close()
	if l.file != nil {
		err = multierr.Append(err, l.file.Close())
	}
	return err
}
