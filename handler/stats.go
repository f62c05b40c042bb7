package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// WrittenTotal counts lines written to the sink
	WrittenTotal uint64
	// FailedTotal counts lines the sink rejected
	FailedTotal uint64
	// BytesTotal counts bytes written to the sink
	BytesTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically records one written line of n bytes
func (s *Stats) IncrementWritten(n int) {
	atomic.AddUint64(&s.WrittenTotal, 1)
	atomic.AddUint64(&s.BytesTotal, uint64(n))
}

// IncrementFailed atomically records one failed line
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetWritten returns the written line count
func (s *Stats) GetWritten() uint64 {
	return atomic.LoadUint64(&s.WrittenTotal)
}

// GetFailed returns the failed line count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetBytes returns the written byte count
func (s *Stats) GetBytes() uint64 {
	return atomic.LoadUint64(&s.BytesTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WrittenTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
	atomic.StoreUint64(&s.BytesTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	WrittenTotal uint64
	FailedTotal  uint64
	BytesTotal   uint64
}

// Add returns the element-wise sum of two snapshots
func (s Snapshot) Add(o Snapshot) Snapshot {
	return Snapshot{
		WrittenTotal: s.WrittenTotal + o.WrittenTotal,
		FailedTotal:  s.FailedTotal + o.FailedTotal,
		BytesTotal:   s.BytesTotal + o.BytesTotal,
	}
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WrittenTotal: s.GetWritten(),
		FailedTotal:  s.GetFailed(),
		BytesTotal:   s.GetBytes(),
	}
}
