// Package config reads the logger settings file.
//
// The only key the logger strictly needs is logging_level; log_type,
// log_file, timestamp_format, log_format and use_state_dir are optional.
// Load picks a decoder by file extension (YAML, TOML, JSON, or a plain
// "key = value" file for anything else) and validates the result.
//
// A missing file is reported as ErrNotFound, which also matches
// fs.ErrNotExist, so callers can tell it apart from a malformed file:
//
//	lvl, err := config.ReadLoggingLevel(config.SettingsPath(&env.OSReader{}))
//	if errors.Is(err, config.ErrNotFound) {
//	    // use the default level
//	}
package config
