package idgen

import (
	"sync"
	"time"
)

// Timestamp derives ids from wall-clock milliseconds. Two calls in the same
// millisecond, or a clock that steps backwards, still yield increasing ids.
type Timestamp struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestamp creates a timestamp generator reading time from now.
func NewTimestamp(now func() time.Time) *Timestamp {
	return &Timestamp{now: now}
}

// NextID returns the next id.
func (t *Timestamp) NextID() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.now().UnixMilli()
	if id <= t.last {
		id = t.last + 1
	}
	t.last = id
	return id
}
