package logger

import (
	"time"

	"github.com/viant/gmetric/counter"
)

// Counter abstracts the constructor build metric, satisfied by a gmetric
// multi operation counter
type Counter interface {
	Begin(started time.Time) counter.OnDone
	IncrementValue(value interface{}) int64
}

// CounterAdapter guards a possibly absent counter
type CounterAdapter struct {
	counter Counter
}

func NewCounter(aCounter Counter) *CounterAdapter {
	return &CounterAdapter{counter: aCounter}
}

func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if c.counter == nil {
		return nopOnDone
	}
	return c.counter.Begin(started)
}

func (c *CounterAdapter) IncrementValue(value interface{}) int64 {
	if c.counter == nil {
		return 0
	}
	return c.counter.IncrementValue(value)
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}
