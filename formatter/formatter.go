package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/samacumen/MyGenericLogger/core"
)

// DefaultTimestampFormat is the layout used when Config leaves it empty
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// UTC converts entry times to UTC before formatting
	UTC bool
}

func (c Config) timestamp(buf *bytes.Buffer, entry *core.Entry) {
	t := entry.Time
	if c.UTC {
		t = t.UTC()
	}
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), c.TimestampFormat))
}

// AppendPrefix writes the tag and origin that precede a message body.
// Raw entries have no prefix.
func AppendPrefix(buf *bytes.Buffer, level core.Level, kind core.Kind, scope, function string) {
	switch kind {
	case core.Raw:
		return
	case core.Persistent:
		buf.WriteString(core.AlwaysLevel.Tag())
		writeOrigin(buf, scope, function)
	default:
		buf.WriteString(level.Tag())
		writeOrigin(buf, scope, function)
		buf.WriteString(" - ")
	}
}

func writeOrigin(buf *bytes.Buffer, scope, function string) {
	buf.WriteString(scope)
	buf.WriteString("::")
	buf.WriteString(function)
	buf.WriteString("()")
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
