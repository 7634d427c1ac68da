package monitor

import (
	"context"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/yildizm/heroboard/internal/gateway"
)

// Labeler maps a request URL to the operation it is counted under
type Labeler func(rawURL string) string

// PathLabel labels a request by its URL path
func PathLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	return u.Path
}

type operation struct {
	timer   *Timer
	success *Counter
	errors  *Counter
}

// Collector records per-operation timings for gateway calls
type Collector struct {
	mu    sync.Mutex
	ops   map[string]*operation
	label Labeler
	now   func() time.Time
}

// NewCollector creates a collector. A nil label groups requests by path.
func NewCollector(label Labeler) *Collector {
	if label == nil {
		label = PathLabel
	}
	return &Collector{
		ops:   make(map[string]*operation),
		label: label,
		now:   time.Now,
	}
}

func (c *Collector) op(name string) *operation {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, ok := c.ops[name]
	if !ok {
		o = &operation{
			timer:   NewTimer(name),
			success: NewCounter(name + "_success"),
			errors:  NewCounter(name + "_errors"),
		}
		c.ops[name] = o
	}
	return o
}

// Record adds one finished call to the named operation
func (c *Collector) Record(name string, d time.Duration, ok bool) {
	o := c.op(name)
	o.timer.Record(d)
	if ok {
		o.success.Inc()
	} else {
		o.errors.Inc()
	}
}

// Snapshot returns the metrics of every operation, sorted by name
func (c *Collector) Snapshot() []OperationMetrics {
	c.mu.Lock()
	names := make([]string, 0, len(c.ops))
	for name := range c.ops {
		names = append(names, name)
	}
	c.mu.Unlock()
	sort.Strings(names)

	out := make([]OperationMetrics, 0, len(names))
	for _, name := range names {
		o := c.op(name)
		out = append(out, OperationMetrics{
			Operation:    name,
			Count:        o.timer.Count(),
			TotalTime:    int64(o.timer.TotalTime()),
			MinTime:      int64(o.timer.MinTime()),
			MaxTime:      int64(o.timer.MaxTime()),
			SuccessCount: o.success.Get(),
			ErrorCount:   o.errors.Get(),
		})
	}
	return out
}

// Instrument wraps gw so every Get is timed into c
func (c *Collector) Instrument(gw gateway.Gateway) gateway.Gateway {
	return &instrumented{next: gw, collector: c}
}

type instrumented struct {
	next      gateway.Gateway
	collector *Collector
}

func (g *instrumented) Get(ctx context.Context, rawURL string) gateway.Result {
	start := g.collector.now()
	result := g.next.Get(ctx, rawURL)
	g.collector.Record(g.collector.label(rawURL), g.collector.now().Sub(start), result.OK())
	return result
}
