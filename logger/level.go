package logger

import (
	"strconv"
	"strings"

	"github.com/samacumen/MyGenericLogger/config"
	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/env"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	AlwaysLevel  = core.AlwaysLevel
	DisableLevel = core.DisableLevel
	FatalLevel   = core.FatalLevel
	ErrorLevel   = core.ErrorLevel
	WarningLevel = core.WarningLevel
	InfoLevel    = core.InfoLevel
	DebugLevel   = core.DebugLevel
	TraceLevel   = core.TraceLevel
	BufferLevel  = core.BufferLevel
	AllLevel     = core.AllLevel
)

// Destination Re-export type and constants for convenience
type Destination = core.Destination

const (
	NoDestination      = core.NoDestination
	ConsoleDestination = core.ConsoleDestination
	FileDestination    = core.FileDestination
)

// ParseLevel converts a level name or number to a Level.
// Unknown input maps to InfoLevel.
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		l, _ := core.LevelFromInt(n)
		return l
	}
	switch strings.ToUpper(s) {
	case "ALWAYS":
		return AlwaysLevel
	case "DISABLE", "OFF":
		return DisableLevel
	case "FATAL":
		return FatalLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	case "BUFFER":
		return BufferLevel
	case "ALL":
		return AllLevel
	default:
		return InfoLevel
	}
}

// ReadLevel returns logging_level from the settings file at path.
// A missing file, a missing key or an undefined value yields InfoLevel.
func ReadLevel(path string) Level {
	n, err := config.ReadLoggingLevel(path)
	if err != nil {
		return InfoLevel
	}
	l, ok := core.LevelFromInt(n)
	if !ok {
		return InfoLevel
	}
	return l
}

// ConfiguredLevel is ReadLevel applied to the resolved settings path.
// It does not change any logger.
func ConfiguredLevel() Level {
	return ReadLevel(config.SettingsPath(&env.OSReader{}))
}
