// Package filehandler provides the file sink: a handler that appends
// formatted log entries to a single text file.
//
// The file is opened once in append mode when the handler is created
// (parent directories are created as needed) and stays open until
// Close, which syncs and closes it. The handler never rotates or
// truncates the file.
//
// The configured filename may contain {{pid}}, {{date}} and {{app}}
// placeholders; they are expanded once, when the file is opened.
package filehandler
