package logger

import (
	"fmt"
	"sync"

	"github.com/samacumen/MyGenericLogger/config"
	"github.com/samacumen/MyGenericLogger/env"
	"github.com/samacumen/MyGenericLogger/handler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
	defaultOnce   sync.Once
)

// Instance returns the shared logger, building it on first use from the
// resolved settings. When the log file cannot be opened the shared
// logger writes to the console instead.
func Instance() *Logger {
	defaultOnce.Do(func() {
		l := newDefault(&env.OSReader{})
		defaultMu.Lock()
		defaultLogger = l
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the shared logger
func SetDefault(l *Logger) {
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// newDefault builds the shared logger from the settings found through r
func newDefault(r env.Reader) *Logger {
	s, err := config.Resolve(r)
	if err != nil {
		s = config.Defaults()
	}

	b, err := FromSettings(s)
	if err != nil {
		b = NewBuilder().WithLevel(s.Level(TraceLevel))
	}
	if l, err := b.Build(); err == nil {
		return l
	}

	l, err := b.WithDestination(ConsoleDestination).Build()
	if err != nil {
		panic(fmt.Sprintf("logger: console logger: %v", err))
	}
	return l
}

// Package-level convenience functions using the shared logger

// SetLevel changes the threshold of the shared logger
func SetLevel(level Level) { Instance().SetLevel(level) }

// CurrentLevel returns the threshold of the shared logger
func CurrentLevel() Level { return Instance().Level() }

// SetDestination redirects the shared logger
func SetDestination(d Destination) error { return Instance().SetDestination(d) }

// EnableAll sets the shared logger's threshold to AllLevel
func EnableAll() { Instance().EnableAll() }

// Disable sets the shared logger's threshold to DisableLevel
func Disable() { Instance().Disable() }

// Stats returns the shared logger's counters
func Stats() handler.Snapshot { return Instance().Stats() }

// Close closes the shared logger's file
func Close() error { return Instance().Close() }

// Fatal logs a fatal message using the shared logger
func Fatal(o Origin, msg string) { Instance().Fatal(o, msg) }

// Error logs an error message using the shared logger
func Error(o Origin, msg string) { Instance().Error(o, msg) }

// Warning logs a warning message using the shared logger
func Warning(o Origin, msg string) { Instance().Warning(o, msg) }

// Info logs an info message using the shared logger
func Info(o Origin, msg string) { Instance().Info(o, msg) }

// Debug logs a debug message using the shared logger
func Debug(o Origin, msg string) { Instance().Debug(o, msg) }

// Trace logs a trace message using the shared logger
func Trace(o Origin, msg string) { Instance().Trace(o, msg) }

// Fatalv logs values at fatal level using the shared logger
func Fatalv(o Origin, values ...interface{}) { Instance().Fatalv(o, values...) }

// Errorv logs values at error level using the shared logger
func Errorv(o Origin, values ...interface{}) { Instance().Errorv(o, values...) }

// Warningv logs values at warning level using the shared logger
func Warningv(o Origin, values ...interface{}) { Instance().Warningv(o, values...) }

// Infov logs values at info level using the shared logger
func Infov(o Origin, values ...interface{}) { Instance().Infov(o, values...) }

// Debugv logs values at debug level using the shared logger
func Debugv(o Origin, values ...interface{}) { Instance().Debugv(o, values...) }

// Tracev logs values at trace level using the shared logger
func Tracev(o Origin, values ...interface{}) { Instance().Tracev(o, values...) }

// Fatalf logs a formatted fatal message using the shared logger
func Fatalf(o Origin, format string, args ...interface{}) { Instance().Fatalf(o, format, args...) }

// Errorf logs a formatted error message using the shared logger
func Errorf(o Origin, format string, args ...interface{}) { Instance().Errorf(o, format, args...) }

// Warningf logs a formatted warning message using the shared logger
func Warningf(o Origin, format string, args ...interface{}) {
	Instance().Warningf(o, format, args...)
}

// Infof logs a formatted info message using the shared logger
func Infof(o Origin, format string, args ...interface{}) { Instance().Infof(o, format, args...) }

// Debugf logs a formatted debug message using the shared logger
func Debugf(o Origin, format string, args ...interface{}) { Instance().Debugf(o, format, args...) }

// Tracef logs a formatted trace message using the shared logger
func Tracef(o Origin, format string, args ...interface{}) { Instance().Tracef(o, format, args...) }

// Always writes msg regardless of the threshold using the shared logger
func Always(o Origin, msg string) { Instance().Always(o, msg) }

// Alwaysv writes values regardless of the threshold using the shared logger
func Alwaysv(o Origin, values ...interface{}) { Instance().Alwaysv(o, values...) }

// Alwaysf writes a formatted message regardless of the threshold
func Alwaysf(o Origin, format string, args ...interface{}) { Instance().Alwaysf(o, format, args...) }

// Buffer writes raw text using the shared logger
func Buffer(text string) { Instance().Buffer(text) }

// BufferBytes writes raw bytes using the shared logger
func BufferBytes(p []byte) { Instance().BufferBytes(p) }

// Bufferv writes raw values using the shared logger
func Bufferv(values ...interface{}) { Instance().Bufferv(values...) }

// BufferBlock writes a block's text using the shared logger
func BufferBlock(block fmt.Stringer) { Instance().BufferBlock(block) }
