// Package idgen provides the job id strategies selectable through configuration.
package idgen

import (
	"fmt"
	"sync/atomic"
	"time"

	"job-board/internal/domain"
)

const (
	StrategyCounter   = "counter"
	StrategyTimestamp = "timestamp"
)

// New returns the generator for the named strategy.
func New(strategy string) (domain.IDGenerator, error) {
	switch strategy {
	case "", StrategyCounter:
		return NewCounter(0), nil
	case StrategyTimestamp:
		return NewTimestamp(time.Now), nil
	default:
		return nil, fmt.Errorf("unknown id strategy: %s", strategy)
	}
}

// Counter is a monotonic id generator.
type Counter struct {
	last atomic.Int64
}

// NewCounter creates a counter whose first id is start+1.
func NewCounter(start int64) *Counter {
	c := &Counter{}
	c.last.Store(start)
	return c
}

// NextID returns the next id.
func (c *Counter) NextID() int64 {
	return c.last.Add(1)
}
