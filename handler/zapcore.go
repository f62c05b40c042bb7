package handler

import (
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/samacumen/MyGenericLogger/core"
)

// ZapCore is an adapter that implements zapcore.Core using a Handler.
// Fields are rendered as " key=value" in key order after the message.
type ZapCore struct {
	handler Handler
	leveler core.Leveler
	fields  []zapcore.Field
}

// NewZapCore creates a new zapcore.Core adapter wrapping the given Handler.
func NewZapCore(h Handler, leveler core.Leveler) *ZapCore {
	return &ZapCore{handler: h, leveler: leveler}
}

// Enabled reports whether entries at the given zap level pass the threshold.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return zapLevelToCore(level).Enabled(c.leveler.Level())
}

// With returns a copy of the core carrying additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &ZapCore{handler: c.handler, leveler: c.leveler, fields: merged}
}

// Check adds the core to the checked entry when the level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts a zap entry to a core.Entry and passes it to the wrapped handler.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = zapLevelToCore(ent.Level)
	entry.Kind = core.Leveled
	entry.Scope, entry.Function = "zap", "Log"
	if ent.Caller.Defined && ent.Caller.Function != "" {
		entry.Scope, entry.Function = core.SplitFuncName(ent.Caller.Function)
	}
	if ent.LoggerName != "" {
		entry.Scope = ent.LoggerName
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(ent.Message)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(core.ValueOf(enc.Fields[k]).String())
	}
	entry.Message = b.String()

	return c.handler.Handle(entry)
}

// Sync is a no-op; handlers write through on every entry.
func (c *ZapCore) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.FatalLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarningLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
