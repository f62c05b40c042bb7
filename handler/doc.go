// Package handler provides the Handler interface that every log sink
// implements, the write counters they share, and adapters that route
// log/slog and go.uber.org/zap calls into a Handler.
//
// Handlers are synchronous: Handle formats the entry and performs a
// single Write of one complete line while holding the handler's own
// mutex, so lines from concurrent goroutines never interleave. A
// handler never retries; failures are returned and counted.
//
// Built-in handlers:
//
//   - consolehandler.ConsoleHandler writes to any io.Writer (default: stdout).
//   - filehandler.FileHandler appends to a single file that stays open
//     until Close. It is never rotated or truncated.
//
// Adapters:
//
//   - SlogHandler implements slog.Handler on top of a Handler.
//   - ZapCore implements zapcore.Core on top of a Handler.
//
// Both adapters take a core.Leveler so that they follow a threshold
// that can change at runtime.
package handler
