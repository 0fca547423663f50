package cactus

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/openfga/cactus/pkg/logger"
)

var (
	nodesAllocatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cactus_nodes_allocated_total",
		Help: "The total number of cactus stack nodes allocated.",
	})

	nodesReclaimedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cactus_nodes_reclaimed_total",
		Help: "The total number of cactus stack nodes reclaimed after their last owner released them.",
	})

	takeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cactus_take_total",
		Help: "The total number of attempts to move a value out of a cactus stack node, partitioned by result.",
	}, []string{"result"})

	takeMovedCounter  = takeCounter.WithLabelValues("moved")
	takeSharedCounter = takeCounter.WithLabelValues("shared")
)

// MetricsObserver exports node lifecycle events as prometheus counters.
type MetricsObserver struct{}

var _ Observer = MetricsObserver{}

func (MetricsObserver) NodeAllocated() { nodesAllocatedCounter.Inc() }

func (MetricsObserver) NodeReclaimed() { nodesReclaimedCounter.Inc() }

func (MetricsObserver) TakeMoved() { takeMovedCounter.Inc() }

func (MetricsObserver) TakeShared() { takeSharedCounter.Inc() }

// LoggingObserver logs node lifecycle events at debug level.
type LoggingObserver struct {
	logger logger.Logger
}

var _ Observer = (*LoggingObserver)(nil)

// NewLoggingObserver returns an observer that writes to l.
func NewLoggingObserver(l logger.Logger) *LoggingObserver {
	return &LoggingObserver{logger: l}
}

func (o *LoggingObserver) NodeAllocated() {
	o.logger.Debug("cactus node allocated")
}

func (o *LoggingObserver) NodeReclaimed() {
	o.logger.Debug("cactus node reclaimed")
}

func (o *LoggingObserver) TakeMoved() {
	o.logger.Debug("cactus value moved out of uniquely owned node")
}

func (o *LoggingObserver) TakeShared() {
	o.logger.Debug("cactus value not moved, node is shared")
}

// MultiObserver forwards every event to each of its observers in order.
type MultiObserver []Observer

var _ Observer = MultiObserver(nil)

func (m MultiObserver) NodeAllocated() {
	for _, o := range m {
		o.NodeAllocated()
	}
}

func (m MultiObserver) NodeReclaimed() {
	for _, o := range m {
		o.NodeReclaimed()
	}
}

func (m MultiObserver) TakeMoved() {
	for _, o := range m {
		o.TakeMoved()
	}
}

func (m MultiObserver) TakeShared() {
	for _, o := range m {
		o.TakeShared()
	}
}

// Counts is a snapshot of the events seen by a CountingObserver.
type Counts struct {
	Allocated int64
	Reclaimed int64
	Moved     int64
	Shared    int64
}

// Live returns the number of nodes allocated but not yet reclaimed.
func (c Counts) Live() int64 {
	return c.Allocated - c.Reclaimed
}

// CountingObserver counts node lifecycle events. It is safe for concurrent use.
type CountingObserver struct {
	allocated atomic.Int64
	reclaimed atomic.Int64
	moved     atomic.Int64
	shared    atomic.Int64
}

var _ Observer = (*CountingObserver)(nil)

func (c *CountingObserver) NodeAllocated() { c.allocated.Add(1) }

func (c *CountingObserver) NodeReclaimed() { c.reclaimed.Add(1) }

func (c *CountingObserver) TakeMoved() { c.moved.Add(1) }

func (c *CountingObserver) TakeShared() { c.shared.Add(1) }

// Counts returns the current counts.
func (c *CountingObserver) Counts() Counts {
	return Counts{
		Allocated: c.allocated.Load(),
		Reclaimed: c.reclaimed.Load(),
		Moved:     c.moved.Load(),
		Shared:    c.shared.Load(),
	}
}
