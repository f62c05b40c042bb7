// Package formatter renders log messages and turns entries into bytes.
//
// Message is the variadic front end: it starts from an origin prefix
// ("[INFO]: Scope::Function() - ") and appends each value in argument
// order, every value preceded by a space and followed by a comma, so a
// call site can hand over heterogeneous arguments without building an
// intermediate string first. A Message can be extended piece by piece
// before it is handed to the logger.
//
// The Formatter interfaces decide the line layout. TextFormatter writes
// "<timestamp>  <prefix><body>" and leaves raw buffer entries untouched;
// JSONFormatter writes one object per line. Both implement Formatter,
// WriterFormatter and BufferFormatter and use a pooled bytes.Buffer.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large dump from permanently inflating memory usage.
package formatter
