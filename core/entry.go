package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Kind tells a formatter how to lay out an entry
type Kind uint8

const (
	// Leveled entries carry a tag, an origin and a " - " separator
	Leveled Kind = iota
	// Persistent entries are written regardless of the threshold
	Persistent
	// Raw entries are written verbatim with no timestamp or prefix
	Raw
)

// Entry represents one log line on its way to a handler
type Entry struct {
	Time     time.Time
	Level    Level
	Kind     Kind
	Scope    string
	Function string
	Message  string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a reset Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	*e = Entry{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Scope = ""
	e.Function = ""
	entryPool.Put(e)
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File     string
	Line     int
	Scope    string
	Function string
	Defined  bool
}

// GetCaller retrieves caller information. Scope is the receiver type
// for methods and the package name for plain functions.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	var name string
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	scope, function := SplitFuncName(name)

	return CallerInfo{
		File:     filepath.Base(file),
		Line:     line,
		Scope:    scope,
		Function: function,
		Defined:  true,
	}
}

// SplitFuncName splits a fully qualified runtime function name such as
// "example.com/app/store.(*Cache).Get" into its scope ("Cache") and
// function ("Get"). Closures report their enclosing function. A dotted
// last path element like "yaml.v3" is treated as the package.
func SplitFuncName(name string) (scope, function string) {
	if name == "" {
		return "", ""
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = stripTypeParams(strings.ReplaceAll(name, "%2e", "."))

	pkg, rest, found := strings.Cut(name, ".")
	if !found {
		return "", name
	}
	// skip the version suffix of gopkg.in style elements such as yaml.v3
	for {
		seg, after, ok := strings.Cut(rest, ".")
		if !ok || !isVersionElem(seg) {
			break
		}
		rest = after
	}

	parts := strings.Split(rest, ".")
	switch {
	case strings.HasPrefix(parts[0], "("):
		scope = strings.Trim(parts[0], "(*)")
		if len(parts) > 1 {
			function = parts[1]
		}
	case len(parts) > 1 && !isClosureName(parts[1]):
		scope, function = parts[0], parts[1]
	default:
		scope, function = pkg, parts[0]
	}
	return scope, function
}

// isVersionElem reports whether s looks like "v3"
func isVersionElem(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isClosureName(s string) bool {
	if strings.HasPrefix(s, "func") {
		return true
	}
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func stripTypeParams(name string) string {
	for {
		start := strings.IndexByte(name, '[')
		if start < 0 {
			return name
		}
		end := strings.IndexByte(name[start:], ']')
		if end < 0 {
			return name
		}
		name = name[:start] + name[start+end+1:]
	}
}
