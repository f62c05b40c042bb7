package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/env"
)

const (
	// AppDir is the directory name used below the XDG config and state dirs
	AppDir = "genericlogger"
	// DefaultSettingsFile is the settings file looked up in the working directory
	DefaultSettingsFile = "settings.conf"
	// DefaultLogFile is the log file name used when log_file is not set
	DefaultLogFile = "MyLogFile.log"
)

// Settings keys
const (
	KeyLoggingLevel    = "logging_level"
	KeyLogType         = "log_type"
	KeyLogFile         = "log_file"
	KeyTimestampFormat = "timestamp_format"
	KeyLogFormat       = "log_format"
	KeyUseStateDir     = "use_state_dir"
)

var (
	// ErrNotFound is returned when the settings file does not exist
	ErrNotFound = fmt.Errorf("config: settings file not found: %w", fs.ErrNotExist)
	// ErrMissingKey is returned when logging_level is absent
	ErrMissingKey = errors.New("config: missing key " + KeyLoggingLevel)
)

// Settings is the logger configuration read from a settings file
type Settings struct {
	LoggingLevel    *int   `yaml:"logging_level" toml:"logging_level" json:"logging_level" validate:"omitempty,loglevel"`
	Destination     string `yaml:"log_type" toml:"log_type" json:"log_type" validate:"omitempty,logtype"`
	FilePath        string `yaml:"log_file" toml:"log_file" json:"log_file"`
	TimestampFormat string `yaml:"timestamp_format" toml:"timestamp_format" json:"timestamp_format"`
	Format          string `yaml:"log_format" toml:"log_format" json:"log_format" validate:"omitempty,oneof=text json"`
	UseStateDir     bool   `yaml:"use_state_dir" toml:"use_state_dir" json:"use_state_dir"`
}

// Defaults returns the settings used when no settings file exists:
// trace level, file destination, MyLogFile.log in the working directory.
func Defaults() *Settings {
	level := int(core.TraceLevel)
	return &Settings{
		LoggingLevel: &level,
		Destination:  core.FileDestination.String(),
		FilePath:     DefaultLogFile,
		Format:       "text",
	}
}

// Level returns the configured level, or def when it is unset or invalid
func (s *Settings) Level(def core.Level) core.Level {
	if s == nil || s.LoggingLevel == nil {
		return def
	}
	l, ok := core.LevelFromInt(*s.LoggingLevel)
	if !ok {
		return def
	}
	return l
}

// DestinationValue returns the configured destination. Both names
// ("file", "console", "none") and the numeric values 1..3 are accepted.
func (s *Settings) DestinationValue() (core.Destination, bool) {
	if s == nil || s.Destination == "" {
		return core.FileDestination, false
	}
	return parseLogType(s.Destination)
}

// LogPath returns the log file path. Relative paths are placed in the
// XDG state directory when UseStateDir is set.
func (s *Settings) LogPath() (string, error) {
	p := DefaultLogFile
	if s != nil && s.FilePath != "" {
		p = s.FilePath
	}
	if s == nil || !s.UseStateDir || filepath.IsAbs(p) {
		return p, nil
	}
	statePath, err := xdg.StateFile(filepath.Join(AppDir, p))
	if err != nil {
		return "", fmt.Errorf("config: resolve state file: %w", err)
	}
	return statePath, nil
}

func parseLogType(s string) (core.Destination, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		d := core.Destination(n)
		switch d {
		case core.NoDestination, core.ConsoleDestination, core.FileDestination:
			return d, true
		}
		return core.FileDestination, false
	}
	return core.ParseDestination(s)
}

// Load reads and validates the settings file at path. The decoder is
// chosen by extension: .yaml/.yml, .toml and .json are decoded as such,
// anything else is read as a "key = value" settings file.
func Load(path string) (*Settings, error) {
	s, err := decode(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadLoggingLevel reads only logging_level from the settings file at path
func ReadLoggingLevel(path string) (int, error) {
	s, err := decode(path)
	if err != nil {
		return 0, err
	}
	if s.LoggingLevel == nil {
		return 0, fmt.Errorf("%w in %s", ErrMissingKey, path)
	}
	return *s.LoggingLevel, nil
}

func decode(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("config: failed to read settings file: %w", err)
	}

	var s Settings
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("config: failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("config: failed to parse TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("config: failed to parse JSON: %w", err)
		}
	default:
		values, err := godotenv.UnmarshalBytes(data)
		if err != nil {
			return nil, fmt.Errorf("config: failed to parse settings: %w", err)
		}
		if err := s.fromMap(values); err != nil {
			return nil, err
		}
	}

	return &s, nil
}

func (s *Settings) fromMap(values map[string]string) error {
	for key, raw := range values {
		v := strings.TrimSpace(raw)
		switch key {
		case KeyLoggingLevel:
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			s.LoggingLevel = &n
		case KeyLogType:
			s.Destination = v
		case KeyLogFile:
			s.FilePath = v
		case KeyTimestampFormat:
			s.TimestampFormat = v
		case KeyLogFormat:
			s.Format = v
		case KeyUseStateDir:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", key, err)
			}
			s.UseStateDir = b
		}
	}
	return nil
}

// SettingsPath resolves the settings file: the GENERICLOGGER_SETTINGS
// variable, then genericlogger/settings.conf in the XDG config dirs,
// then settings.conf in the working directory.
func SettingsPath(r env.Reader) string {
	if p := r.Getenv(env.SettingsVar); p != "" {
		return p
	}
	if p, err := xdg.SearchConfigFile(filepath.Join(AppDir, DefaultSettingsFile)); err == nil {
		return p
	}
	return DefaultSettingsFile
}

// ApplyEnv overrides s with the GENERICLOGGER_LEVEL, GENERICLOGGER_LOG_TYPE
// and GENERICLOGGER_LOG_FILE variables when they are set.
func ApplyEnv(s *Settings, r env.Reader) error {
	if v := r.Getenv(env.LevelVar); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", env.LevelVar, err)
		}
		s.LoggingLevel = &n
	}
	if v := r.Getenv(env.LogTypeVar); v != "" {
		s.Destination = v
	}
	if v := r.Getenv(env.LogFileVar); v != "" {
		s.FilePath = v
	}
	return nil
}

// Resolve loads the settings file found by SettingsPath, falling back to
// Defaults when it does not exist, and applies environment overrides.
// Keys missing from the file keep their default values.
func Resolve(r env.Reader) (*Settings, error) {
	s := Defaults()
	loaded, err := Load(SettingsPath(r))
	switch {
	case err == nil:
		s.merge(loaded)
	case !errors.Is(err, ErrNotFound):
		return s, err
	}
	if err := ApplyEnv(s, r); err != nil {
		return s, err
	}
	return s, Validate(s)
}

func (s *Settings) merge(o *Settings) {
	if o.LoggingLevel != nil {
		s.LoggingLevel = o.LoggingLevel
	}
	if o.Destination != "" {
		s.Destination = o.Destination
	}
	if o.FilePath != "" {
		s.FilePath = o.FilePath
	}
	if o.TimestampFormat != "" {
		s.TimestampFormat = o.TimestampFormat
	}
	if o.Format != "" {
		s.Format = o.Format
	}
	s.UseStateDir = s.UseStateDir || o.UseStateDir
}
