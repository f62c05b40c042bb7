// Package consolehandler provides the console sink: a handler that
// writes formatted log entries to any io.Writer (default: os.Stdout).
//
// Each entry is formatted into a handler-owned buffer and written with
// a single Write call while the handler mutex is held, so concurrent
// lines never interleave. Close does not close the writer.
package consolehandler
