// Package monitor keeps lightweight request metrics for the gateway.
package monitor

import (
	"math"
	"sync/atomic"
	"time"
)

// OperationMetrics holds metrics for one labelled operation
type OperationMetrics struct {
	Operation    string `json:"operation"`
	Count        int64  `json:"count"`
	TotalTime    int64  `json:"total_time_ns"`
	MinTime      int64  `json:"min_time_ns"`
	MaxTime      int64  `json:"max_time_ns"`
	ErrorCount   int64  `json:"error_count"`
	SuccessCount int64  `json:"success_count"`
}

// AvgTime returns the mean duration of the operation
func (o OperationMetrics) AvgTime() time.Duration {
	if o.Count == 0 {
		return 0
	}
	return time.Duration(o.TotalTime / o.Count)
}

// Counter counts events under a name
type Counter struct {
	n    atomic.Int64
	name string
}

// NewCounter creates a named counter
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

func (c *Counter) Inc()            { c.n.Add(1) }
func (c *Counter) Add(delta int64) { c.n.Add(delta) }
func (c *Counter) Get() int64      { return c.n.Load() }
func (c *Counter) Reset()          { c.n.Store(0) }
func (c *Counter) Name() string    { return c.name }

// Timer accumulates durations
type Timer struct {
	count atomic.Int64
	total atomic.Int64
	min   atomic.Int64
	max   atomic.Int64
	name  string
}

// NewTimer creates a named timer
func NewTimer(name string) *Timer {
	t := &Timer{name: name}
	t.min.Store(math.MaxInt64)
	return t
}

// Record adds one measurement
func (t *Timer) Record(d time.Duration) {
	ns := d.Nanoseconds()
	t.count.Add(1)
	t.total.Add(ns)

	for cur := t.min.Load(); ns < cur; cur = t.min.Load() {
		if t.min.CompareAndSwap(cur, ns) {
			break
		}
	}
	for cur := t.max.Load(); ns > cur; cur = t.max.Load() {
		if t.max.CompareAndSwap(cur, ns) {
			break
		}
	}
}

func (t *Timer) Count() int64             { return t.count.Load() }
func (t *Timer) TotalTime() time.Duration { return time.Duration(t.total.Load()) }
func (t *Timer) MaxTime() time.Duration   { return time.Duration(t.max.Load()) }
func (t *Timer) Name() string             { return t.name }

// MinTime is 0 until something has been recorded
func (t *Timer) MinTime() time.Duration {
	if v := t.min.Load(); v != math.MaxInt64 {
		return time.Duration(v)
	}
	return 0
}

// AvgTime is the mean of all measurements
func (t *Timer) AvgTime() time.Duration {
	n := t.count.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(t.total.Load() / n)
}

// Reset clears every measurement
func (t *Timer) Reset() {
	t.count.Store(0)
	t.total.Store(0)
	t.min.Store(math.MaxInt64)
	t.max.Store(0)
}
