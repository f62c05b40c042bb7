package core

import "math"

// Level represents the severity of a log entry. Lower is more severe.
type Level int8

const (
	// AlwaysLevel marks persistent messages that ignore the threshold
	AlwaysLevel Level = math.MinInt8
	// DisableLevel turns off every leveled message
	DisableLevel Level = 0
	// FatalLevel for very severe errors that will presumably abort the application
	FatalLevel Level = 1
	// ErrorLevel for errors that still allow the application to continue
	ErrorLevel Level = 2
	// WarningLevel for potentially harmful situations
	WarningLevel Level = 3
	// InfoLevel for coarse-grained progress messages
	InfoLevel Level = 4
	// DebugLevel for fine-grained diagnostic messages
	DebugLevel Level = 5
	// TraceLevel for messages finer than debug
	TraceLevel Level = 6
	// BufferLevel gates raw buffer dumps
	BufferLevel Level = 7
	// AllLevel enables every level including buffer dumps
	AllLevel Level = 8
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case AlwaysLevel:
		return "ALWAYS"
	case DisableLevel:
		return "DISABLE"
	case FatalLevel:
		return "FATAL"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	case BufferLevel:
		return "BUFFER"
	case AllLevel:
		return "ALL"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the bracketed prefix written in front of a message at
// this level. Levels without a tag return the empty string.
func (l Level) Tag() string {
	switch l {
	case AlwaysLevel:
		return "[ALWAYS]: "
	case FatalLevel:
		return "[FATAL]: "
	case ErrorLevel:
		return "[ERROR]: "
	case WarningLevel:
		return "[WARNING]: "
	case InfoLevel:
		return "[INFO]: "
	case DebugLevel:
		return "[DEBUG]: "
	case TraceLevel:
		return "[TRACE]: "
	default:
		return ""
	}
}

// Enabled reports whether a message at level l passes threshold.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l == AlwaysLevel || (l >= DisableLevel && l <= AllLevel)
}

// LevelFromInt converts a configured integer into a Level. The second
// result is false when v does not name a defined level.
func LevelFromInt(v int) (Level, bool) {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return InfoLevel, false
	}
	l := Level(v)
	if !l.Valid() {
		return InfoLevel, false
	}
	return l, true
}

// Leveler is implemented by anything that exposes a current threshold.
type Leveler interface {
	Level() Level
}

// Destination selects where log lines are written
type Destination int8

const (
	// NoDestination discards every line
	NoDestination Destination = 1
	// ConsoleDestination writes to standard output
	ConsoleDestination Destination = 2
	// FileDestination appends to the log file
	FileDestination Destination = 3
)

// String returns the string representation of the destination
func (d Destination) String() string {
	switch d {
	case NoDestination:
		return "none"
	case ConsoleDestination:
		return "console"
	case FileDestination:
		return "file"
	default:
		return "unknown"
	}
}

// ParseDestination converts a configured name into a Destination.
// Unknown names map to FileDestination and false.
func ParseDestination(s string) (Destination, bool) {
	switch s {
	case "none", "disabled", "off":
		return NoDestination, true
	case "console", "stdout":
		return ConsoleDestination, true
	case "file":
		return FileDestination, true
	default:
		return FileDestination, false
	}
}
