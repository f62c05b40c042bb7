package logger

import (
	"github.com/samacumen/MyGenericLogger/config"
	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/formatter"
)

// FromSettings returns a Builder configured from s. Missing or invalid
// values keep the builder defaults.
func FromSettings(s *config.Settings) (*Builder, error) {
	b := NewBuilder().WithLevel(s.Level(core.TraceLevel))

	if d, ok := s.DestinationValue(); ok {
		b.WithDestination(d)
	}

	path, err := s.LogPath()
	if err != nil {
		return nil, err
	}
	b.WithFile(path)

	cfg := formatter.Config{TimestampFormat: s.TimestampFormat}
	if s.Format == "json" {
		b.WithFormatter(formatter.NewJSONFormatter(cfg))
	} else {
		b.WithFormatter(formatter.NewTextFormatter(cfg))
	}
	return b, nil
}
