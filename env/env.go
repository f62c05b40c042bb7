package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Variables read by the logger when it resolves its settings
const (
	// SettingsVar names the settings file to read
	SettingsVar = "GENERICLOGGER_SETTINGS"
	// LevelVar overrides logging_level
	LevelVar = "GENERICLOGGER_LEVEL"
	// LogTypeVar overrides log_type
	LogTypeVar = "GENERICLOGGER_LOG_TYPE"
	// LogFileVar overrides log_file
	LogFileVar = "GENERICLOGGER_LOG_FILE"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader implements Reader over a fixed set of values
type MapReader map[string]string

// Getenv returns the value stored for key, or the empty string
func (m MapReader) Getenv(key string) string {
	return m[key]
}
