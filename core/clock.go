package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies entry timestamps
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now on every call
var SystemClock Clock = ClockFunc(time.Now)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

type coarseClock struct{}

func (coarseClock) Now() time.Time { return *coarseNow.Load() }

// CoarseClock returns a Clock that caches time.Now() every 500µs.
// The refresh goroutine is started on the first call and runs for the
// lifetime of the process, like the logger it serves.
func CoarseClock() Clock {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
	return coarseClock{}
}
