package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/formatter"
)

var fixedTime = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

const stamp = "2026-01-15 12:00:00  "

func fixedClock() core.Clock {
	return core.ClockFunc(func() time.Time { return fixedTime })
}

// syncBuffer is a bytes.Buffer that can be read while the logger writes
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

func newConsoleLogger(t *testing.T, level core.Level) (*Logger, *syncBuffer) {
	t.Helper()
	out := &syncBuffer{}
	l, err := NewBuilder().
		WithLevel(level).
		WithDestination(ConsoleDestination).
		WithConsole(out).
		WithFile(filepath.Join(t.TempDir(), "test.log")).
		WithClock(fixedClock()).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l, out
}

func newFileLogger(t *testing.T, path string, level core.Level) *Logger {
	t.Helper()
	l, err := NewBuilder().WithFile(path).WithLevel(level).WithClock(fixedClock()).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return l
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func TestLogger_LevelMatrix(t *testing.T) {
	levels := []core.Level{FatalLevel, ErrorLevel, WarningLevel, InfoLevel, DebugLevel, TraceLevel}
	thresholds := []core.Level{
		DisableLevel, FatalLevel, ErrorLevel, WarningLevel, InfoLevel,
		DebugLevel, TraceLevel, BufferLevel, AllLevel,
	}

	l, out := newConsoleLogger(t, InfoLevel)
	calls := map[core.Level]func(Origin, string){
		FatalLevel:   l.Fatal,
		ErrorLevel:   l.Error,
		WarningLevel: l.Warning,
		InfoLevel:    l.Info,
		DebugLevel:   l.Debug,
		TraceLevel:   l.Trace,
	}

	for _, threshold := range thresholds {
		l.SetLevel(threshold)
		for _, level := range levels {
			out.Reset()
			calls[level](At("Matrix", "run"), "msg")

			emitted := out.String() != ""
			if emitted != (level <= threshold) {
				t.Errorf("level %s at threshold %s: emitted = %v", level, threshold, emitted)
				continue
			}
			want := stamp + level.Tag() + "Matrix::run() - msg\n"
			if emitted && out.String() != want {
				t.Errorf("level %s: got %q, want %q", level, out.String(), want)
			}
		}
	}
}

func TestLogger_VariantsShareGate(t *testing.T) {
	l, out := newConsoleLogger(t, WarningLevel)
	o := At("Pool", "Acquire")

	l.Infov(o, "hidden")
	l.Infof(o, "hidden %d", 1)
	l.Debugv(o, "hidden")
	if out.String() != "" {
		t.Fatalf("Filtered variants wrote output: %q", out.String())
	}

	l.Warningv(o, "waited", 250*time.Millisecond, "idle", 0)
	l.Errorf(o, "retry %d of %d", 2, 3)
	l.Fatalv(o, "gone")

	want := stamp + "[WARNING]: Pool::Acquire() -  waited, 250ms, idle, 0,\n" +
		stamp + "[ERROR]: Pool::Acquire() - retry 2 of 3\n" +
		stamp + "[FATAL]: Pool::Acquire() -  gone,\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_WarningThreshold(t *testing.T) {
	l, out := newConsoleLogger(t, TraceLevel)
	l.SetLevel(WarningLevel)

	l.Info(At("Svc", "poll"), "tick")
	if out.String() != "" {
		t.Errorf("Info message was logged when level is Warning: %q", out.String())
	}

	l.Error(At("Svc", "poll"), "failed")
	if want := stamp + "[ERROR]: Svc::poll() - failed\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}

	out.Reset()
	l.Warning(At("Svc", "poll"), "slow")
	if want := stamp + "[WARNING]: Svc::poll() - slow\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestLogger_AlwaysIgnoresThreshold(t *testing.T) {
	l, out := newConsoleLogger(t, InfoLevel)
	l.Disable()
	if l.Level() != DisableLevel {
		t.Fatalf("Level() = %s, want DISABLE", l.Level())
	}

	l.Error(At("Boot", "main"), "hidden")
	l.Always(At("Boot", "main"), " starting")
	l.Alwaysv(At("Boot", "main"), "pid", 42)
	l.Alwaysf(At("Boot", "main"), " v%d", 2)

	want := stamp + "[ALWAYS]: Boot::main() starting\n" +
		stamp + "[ALWAYS]: Boot::main() pid, 42,\n" +
		stamp + "[ALWAYS]: Boot::main() v2\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type hexDump []byte

func (h hexDump) String() string { return fmt.Sprintf("% x", []byte(h)) }

func TestLogger_BufferConsole(t *testing.T) {
	l, out := newConsoleLogger(t, TraceLevel)

	l.Buffer("filtered at trace")
	if out.String() != "" {
		t.Fatalf("Buffer written at trace threshold: %q", out.String())
	}

	l.SetLevel(BufferLevel)
	l.Buffer("raw dump")
	l.BufferBytes([]byte("bytes"))
	l.BufferBlock(hexDump{0xde, 0xad})
	l.Bufferv("a", 1)

	if want := "raw dump\nbytes\nde ad\n a, 1,\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}

	out.Reset()
	l.EnableAll()
	l.Buffer("")
	if out.String() != "\n" {
		t.Errorf("Empty buffer: got %q, want a bare newline", out.String())
	}
}

func TestLogger_BufferFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffer.log")
	l := newFileLogger(t, path, AllLevel)

	l.Buffer("0000: 00 01 02")
	l.Info(At("Dump", "run"), "done")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if got, want := readFile(t, path), "0000: 00 01 02\n"+stamp+"[INFO]: Dump::run() - done\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_FatalToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := NewBuilder().WithFile(path).WithClock(fixedClock()).Build()
	if err != nil {
		t.Fatal(err)
	}
	if l.Level() != TraceLevel || l.Destination() != FileDestination {
		t.Errorf("Defaults = (%s, %s), want (TRACE, file)", l.Level(), l.Destination())
	}
	if l.Filename() != path {
		t.Errorf("Filename() = %q, want %q", l.Filename(), path)
	}

	l.Fatal(At("Storage", "flush"), "disk full")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content := readFile(t, path)
	if !strings.HasSuffix(content, "[FATAL]: Storage::flush() - disk full\n") {
		t.Errorf("Unexpected file content: %q", content)
	}
	if content != stamp+"[FATAL]: Storage::flush() - disk full\n" {
		t.Errorf("Expected exactly one line, got %q", content)
	}
}

func TestLogger_SwitchDestination(t *testing.T) {
	l, out := newConsoleLogger(t, InfoLevel)
	o := At("Switch", "run")

	steps := []struct {
		dest Destination
		msg  string
	}{
		{ConsoleDestination, "one"},
		{FileDestination, "two"},
		{ConsoleDestination, "three"},
		{NoDestination, "four"},
		{FileDestination, "five"},
	}
	for _, s := range steps {
		if err := l.SetDestination(s.dest); err != nil {
			t.Fatalf("SetDestination(%s) error = %v", s.dest, err)
		}
		l.Info(o, s.msg)
	}

	if want := stamp + "[INFO]: Switch::run() - one\n" + stamp + "[INFO]: Switch::run() - three\n"; out.String() != want {
		t.Errorf("console got %q, want %q", out.String(), want)
	}
	if got, want := readFile(t, l.Filename()), stamp+"[INFO]: Switch::run() - two\n"+stamp+"[INFO]: Switch::run() - five\n"; got != want {
		t.Errorf("file got %q, want %q", got, want)
	}
}

func TestLogger_SetDestinationErrors(t *testing.T) {
	dir := t.TempDir()
	l, err := NewBuilder().
		WithDestination(ConsoleDestination).
		WithConsole(&syncBuffer{}).
		WithFile(dir).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if err := l.SetDestination(FileDestination); err == nil {
		t.Error("Expected error opening a directory as the log file")
	}
	if l.Destination() != ConsoleDestination {
		t.Errorf("Destination changed to %s after failed switch", l.Destination())
	}

	if err := l.SetDestination(core.Destination(9)); !errors.Is(err, ErrUnknownDestination) {
		t.Errorf("SetDestination(9) error = %v, want ErrUnknownDestination", err)
	}
	if l.Destination() != ConsoleDestination {
		t.Errorf("Destination changed to %s after unknown value", l.Destination())
	}

	if _, err := NewBuilder().WithFile(dir).Build(); err == nil {
		t.Error("Build() with unopenable file should fail")
	}
}

func TestLogger_Concurrent(t *testing.T) {
	const goroutines, messages = 8, 200

	path := filepath.Join(t.TempDir(), "concurrent.log")
	l := newFileLogger(t, path, InfoLevel)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for m := 0; m < messages; m++ {
				l.Infov(At("Worker", "run"), "goroutine", g, "message", m)
			}
		}(g)
	}
	wg.Wait()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(readFile(t, path), "\n"), "\n")
	if len(lines) != goroutines*messages {
		t.Fatalf("Expected %d lines, got %d", goroutines*messages, len(lines))
	}

	prefix := stamp + "[INFO]: Worker::run() -  goroutine, "
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) || !strings.HasSuffix(line, ",") {
			t.Fatalf("Torn line %q", line)
		}
	}

	snap := l.Stats()
	if snap.WrittenTotal != goroutines*messages || snap.FailedTotal != 0 {
		t.Errorf("Unexpected stats: %+v", snap)
	}
}

func TestLogger_ConcurrentLevelChanges(t *testing.T) {
	l, _ := newConsoleLogger(t, InfoLevel)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			l.SetLevel(core.Level(i % 9))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			l.Debug(At("Race", "run"), "x")
		}
	}()
	wg.Wait()
}

type panicky struct{}

func (panicky) String() string { panic("boom") }

func TestLogger_RecoversPanics(t *testing.T) {
	l, out := newConsoleLogger(t, InfoLevel)

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic escaped the logger: %v", r)
			}
		}()
		l.Infov(At("Bad", "value"), panicky{})
		l.SetLevel(AllLevel)
		l.BufferBlock(panicky{})
	}()

	l.Info(At("Good", "value"), "still writing")
	if !strings.Contains(out.String(), "[INFO]: Good::value() - still writing") {
		t.Errorf("Logger stopped writing after a recovered panic: %q", out.String())
	}
	if got := l.Stats().FailedTotal; got != 2 {
		t.Errorf("FailedTotal = %d, want 2", got)
	}
}

type timeoutError struct{ op string }

func (e *timeoutError) Error() string { return e.op + ": timeout" }

func TestLogger_NilPointerValues(t *testing.T) {
	l, out := newConsoleLogger(t, InfoLevel)

	var ts *time.Time
	var err *timeoutError
	l.Infov(At("Sched", "next"), "when", ts, "err", err)

	want := stamp + "[INFO]: Sched::next() -  when, <nil>, err, <nil>,\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
	if got := l.Stats().FailedTotal; got != 0 {
		t.Errorf("FailedTotal = %d, want 0", got)
	}
}

func TestLogger_WriteAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.log")
	l := newFileLogger(t, path, TraceLevel)

	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	l.Error(At("After", "close"), "lost")
	if got := l.Stats().FailedTotal; got != 1 {
		t.Errorf("FailedTotal = %d, want 1", got)
	}
	if content := readFile(t, path); content != "" {
		t.Errorf("Expected empty file, got %q", content)
	}
}

func TestLogger_ReopenAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.log")
	l := newFileLogger(t, path, TraceLevel)
	o := At("Store", "flush")

	l.Info(o, "before close")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	l.Info(o, "lost while closed")

	if err := l.SetDestination(ConsoleDestination); err != nil {
		t.Fatal(err)
	}
	if err := l.SetDestination(FileDestination); err != nil {
		t.Fatalf("SetDestination(file) after Close error = %v", err)
	}
	l.Error(o, "after reopen")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	want := stamp + "[INFO]: Store::flush() - before close\n" +
		stamp + "[ERROR]: Store::flush() - after reopen\n"
	if got := readFile(t, path); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	snap := l.Stats()
	if snap.WrittenTotal != 2 || snap.FailedTotal != 1 {
		t.Errorf("Stats must keep counters across reopen, got %+v", snap)
	}
}

func TestLogger_FilteredCallsDoNotAllocate(t *testing.T) {
	l, _ := newConsoleLogger(t, ErrorLevel)
	o := At("Hot", "path")

	allocs := testing.AllocsPerRun(100, func() {
		l.Debug(o, "filtered")
		l.Trace(o, "filtered")
		l.Buffer("filtered")
	})
	if allocs != 0 {
		t.Errorf("Filtered calls allocated %.1f times per run", allocs)
	}
}

func TestLogger_MessageEmit(t *testing.T) {
	l, out := newConsoleLogger(t, InfoLevel)

	l.Emit(l.Message(InfoLevel, At("Builder", "step")).Append("count", 3).Append(true))
	l.Emit(l.Message(DebugLevel, At("Builder", "step")).Append("hidden"))

	l.Disable()
	l.Emit(l.Message(AlwaysLevel, At("Builder", "step")).Append("kept"))

	want := stamp + "[INFO]: Builder::step() -  count, 3, true,\n" +
		stamp + "[ALWAYS]: Builder::step() kept,\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type widget struct{}

func (w *widget) render() Origin { return Here() }

func TestHere(t *testing.T) {
	if o := Here(); o != (Origin{Scope: "logger", Function: "TestHere"}) {
		t.Errorf("Here() = %+v", o)
	}

	o := (&widget{}).render()
	if o != (Origin{Scope: "widget", Function: "render"}) {
		t.Errorf("Here() in method = %+v", o)
	}
	if o.String() != "widget::render()" {
		t.Errorf("String() = %q", o.String())
	}
}

func TestLogger_JSONFormatter(t *testing.T) {
	out := &syncBuffer{}
	l, err := NewBuilder().
		WithDestination(ConsoleDestination).
		WithConsole(out).
		WithClock(fixedClock()).
		WithFormatter(formatter.NewJSONFormatter(formatter.Config{TimestampFormat: time.RFC3339})).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	l.Warning(At("Cache", "Evict"), `key "a"`)
	want := `{"time":"2026-01-15T12:00:00Z","level":"WARNING","scope":"Cache","function":"Evict","message":"key \"a\""}` + "\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestLogger_Slog(t *testing.T) {
	l, out := newConsoleLogger(t, WarningLevel)
	sl := l.Slog()

	sl.Info("hidden")
	sl.Warn("slow", "ms", 120)

	if !strings.Contains(out.String(), "  [WARNING]: logger::TestLogger_Slog() - slow ms=120\n") {
		t.Errorf("Unexpected slog output: %q", out.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Error("Info record passed a warning threshold")
	}
}

func TestLogger_Zap(t *testing.T) {
	l, out := newConsoleLogger(t, InfoLevel)
	zl := l.Zap()

	zl.Debug("hidden")
	zl.Named("Store").Error("write failed")

	if !strings.Contains(out.String(), "[ERROR]: Store::TestLogger_Zap() - write failed\n") {
		t.Errorf("Unexpected zap output: %q", out.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Error("Debug entry passed an info threshold")
	}
}
