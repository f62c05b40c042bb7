// Package logger is the public API of MyGenericLogger. Most users only
// need to import this package.
//
// A Logger writes to one destination at a time: the console, a file
// opened in append mode, or nowhere. Each call produces exactly one line:
//
//	2026-01-15 12:00:00  [ERROR]: Cache::Get() - miss
//	2026-01-15 12:00:00  [ALWAYS]: Server::Start() starting
//	raw buffer text
//
// A message at level L is written iff L <= threshold. Lower levels are
// more severe, so SetLevel(WarningLevel) keeps fatal, error and warning
// messages. Always* calls ignore the threshold; Buffer* calls are only
// written at BufferLevel or AllLevel and carry no timestamp or tag.
//
// The threshold and destination are atomics and can be changed from any
// goroutine. Writes to the sinks are serialized by the logger's mutex,
// so concurrent calls never interleave within a line.
//
// Calls take an Origin that names the issuing code. Use At for a fixed
// name or Here to capture the caller:
//
//	log.Error(logger.At("Cache", "Get"), "miss")
//	log.Infov(logger.Here(), "waited", elapsed, "idle", n)
//
// The shared logger returned by Instance is built on first use from the
// settings file (see package config) and defaults to the trace level and
// MyLogFile.log. The package-level functions delegate to it.
//
// Logging never panics into the caller and never exits the process:
// sink errors and panics raised while rendering values are counted and
// reported by Stats.
package logger
