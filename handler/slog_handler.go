package handler

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/samacumen/MyGenericLogger/core"
)

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// Attributes are rendered as " key=value" after the message.
type SlogHandler struct {
	handler Handler
	leveler core.Leveler
	attrs   string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// Records are filtered against the threshold reported by leveler.
func NewSlogHandler(h Handler, leveler core.Leveler) *SlogHandler {
	return &SlogHandler{
		handler: h,
		leveler: leveler,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).Enabled(s.leveler.Level())
}

// Handle converts a slog.Record to a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Kind = core.Leveled
	entry.Scope, entry.Function = "slog", "Log"
	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		if f, _ := frames.Next(); f.Function != "" {
			entry.Scope, entry.Function = core.SplitFuncName(f.Function)
		}
	}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendSlogAttr(&b, s.group, a)
		return true
	})
	entry.Message = b.String()

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendSlogAttr(&b, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		leveler: s.leveler,
		attrs:   b.String(),
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		leveler: s.leveler,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr writes " key=value", flattening groups into dotted keys.
func appendSlogAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key == "" {
			key = group
		}
		for _, ga := range a.Value.Group() {
			appendSlogAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(core.ValueOf(a.Value.Any()).String())
}
