package formatter

import (
	"bytes"

	"github.com/samacumen/MyGenericLogger/core"
)

// Message accumulates the body of one log call. It is not safe for
// concurrent use and must not be used after Release.
type Message struct {
	level    core.Level
	kind     core.Kind
	scope    string
	function string
	buf      *bytes.Buffer
}

// NewMessage starts a message for the given level and origin.
// AlwaysLevel produces a persistent message and BufferLevel a raw one.
func NewMessage(level core.Level, scope, function string) *Message {
	kind := core.Leveled
	switch level {
	case core.AlwaysLevel:
		kind = core.Persistent
	case core.BufferLevel:
		kind = core.Raw
	}
	return &Message{
		level:    level,
		kind:     kind,
		scope:    scope,
		function: function,
		buf:      getBuffer(),
	}
}

// Append renders each value as " <text>," in argument order
func (m *Message) Append(values ...interface{}) *Message {
	for _, v := range values {
		m.AppendValue(core.ValueOf(v))
	}
	return m
}

// AppendValue renders an already encoded value
func (m *Message) AppendValue(v core.Value) *Message {
	m.buf.WriteByte(' ')
	m.buf.Write(v.AppendTo(m.buf.AvailableBuffer()))
	m.buf.WriteByte(',')
	return m
}

// Level returns the message level
func (m *Message) Level() core.Level { return m.level }

// Kind returns how the message will be laid out
func (m *Message) Kind() core.Kind { return m.kind }

// Scope returns the origin scope
func (m *Message) Scope() string { return m.scope }

// Function returns the origin function
func (m *Message) Function() string { return m.function }

// Body returns the rendered values without the prefix
func (m *Message) Body() string {
	return m.buf.String()
}

// String returns the prefix followed by the body
func (m *Message) String() string {
	out := getBuffer()
	AppendPrefix(out, m.level, m.kind, m.scope, m.function)
	out.Write(m.buf.Bytes())
	s := out.String()
	putBuffer(out)
	return s
}

// Release returns the message buffer to the pool
func (m *Message) Release() {
	if m.buf != nil {
		putBuffer(m.buf)
		m.buf = nil
	}
}

// Values renders values the way Message.Append does and returns the text
func Values(values ...interface{}) string {
	buf := getBuffer()
	for _, v := range values {
		buf.WriteByte(' ')
		buf.Write(core.ValueOf(v).AppendTo(buf.AvailableBuffer()))
		buf.WriteByte(',')
	}
	s := buf.String()
	putBuffer(buf)
	return s
}
