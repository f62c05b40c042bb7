package handler

import (
	"sync"
	"sync/atomic"

	"github.com/samacumen/MyGenericLogger/core"
)

// recordingHandler keeps a copy of every entry it receives
type recordingHandler struct {
	mu      sync.Mutex
	entries []core.Entry
	closed  bool
}

func (r *recordingHandler) Handle(entry *core.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *recordingHandler) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *recordingHandler) all() []core.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Entry(nil), r.entries...)
}

// threshold is a core.Leveler that can be changed at runtime
type threshold struct{ v atomic.Int32 }

func newThreshold(l core.Level) *threshold {
	t := &threshold{}
	t.v.Store(int32(l))
	return t
}

func (t *threshold) Level() core.Level { return core.Level(t.v.Load()) }

func (t *threshold) set(l core.Level) { t.v.Store(int32(l)) }
