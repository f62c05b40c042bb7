package benchmark

import (
	"github.com/samacumen/MyGenericLogger/core"
	"github.com/samacumen/MyGenericLogger/handler"
)

// noopHandler isolates adapter overhead from formatting and I/O
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

// fixedLevel is a constant threshold for the adapters
type fixedLevel core.Level

func (f fixedLevel) Level() core.Level { return core.Level(f) }
