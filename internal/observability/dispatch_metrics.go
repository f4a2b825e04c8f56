package observability

import (
	"sync/atomic"
	"time"
)

// DispatchMetrics counts notification deliveries. Counters are read through
// Snapshot and exported as Prometheus counter funcs.
type DispatchMetrics struct {
	queued       atomic.Uint64
	dropped      atomic.Uint64
	claimed      atomic.Uint64
	done         atomic.Uint64
	failed       atomic.Uint64
	retried      atomic.Uint64
	deadLettered atomic.Uint64

	// nanoseconds
	durationCount atomic.Uint64
	durationTotal atomic.Int64
	durationMax   atomic.Int64
}

func NewDispatchMetrics() *DispatchMetrics {
	return &DispatchMetrics{}
}

func (m *DispatchMetrics) IncQueued()       { m.queued.Add(1) }
func (m *DispatchMetrics) IncDropped()      { m.dropped.Add(1) }
func (m *DispatchMetrics) IncClaimed()      { m.claimed.Add(1) }
func (m *DispatchMetrics) IncDone()         { m.done.Add(1) }
func (m *DispatchMetrics) IncFailed()       { m.failed.Add(1) }
func (m *DispatchMetrics) IncRetried()      { m.retried.Add(1) }
func (m *DispatchMetrics) IncDeadLettered() { m.deadLettered.Add(1) }

func (m *DispatchMetrics) ObserveDuration(d time.Duration) {
	ns := d.Nanoseconds()
	m.durationCount.Add(1)
	m.durationTotal.Add(ns)

	for {
		curr := m.durationMax.Load()
		if ns <= curr {
			return
		}
		if m.durationMax.CompareAndSwap(curr, ns) {
			return
		}
	}
}

type DispatchSnapshot struct {
	Queued          uint64
	Dropped         uint64
	Claimed         uint64
	Done            uint64
	Failed          uint64
	Retried         uint64
	DeadLettered    uint64
	DurationCount   uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration
}

func (m *DispatchMetrics) Snapshot() DispatchSnapshot {
	count := m.durationCount.Load()
	total := m.durationTotal.Load()

	var avg time.Duration
	if count > 0 {
		avg = time.Duration(total / int64(count))
	}

	return DispatchSnapshot{
		Queued:          m.queued.Load(),
		Dropped:         m.dropped.Load(),
		Claimed:         m.claimed.Load(),
		Done:            m.done.Load(),
		Failed:          m.failed.Load(),
		Retried:         m.retried.Load(),
		DeadLettered:    m.deadLettered.Load(),
		DurationCount:   count,
		AverageDuration: avg,
		MaxDuration:     time.Duration(m.durationMax.Load()),
	}
}
