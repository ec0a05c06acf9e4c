package obs

import (
	"sync/atomic"
	"time"

	"main/internal/fix"
)

// Metrics collects lightweight session counters and latency stats. All
// methods are nil-safe so instrumentation can stay unconditional.
type Metrics struct {
	msgCounts [fix.MsgTypeCount]uint64
	bytesIn   uint64
	bytesOut  uint64
	sent      uint64

	dispatchLatency LatencyStats
}

// LatencyStats aggregates duration samples in nanoseconds.
type LatencyStats struct {
	count uint64
	sum   uint64
	min   uint64
	max   uint64
}

// LatencySnapshot is a point-in-time view of latency stats.
type LatencySnapshot struct {
	Count uint64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Snapshot captures the current metrics values.
type Snapshot struct {
	MsgCounts       map[fix.MsgType]uint64
	BytesIn         uint64
	BytesOut        uint64
	Sent            uint64
	DispatchLatency LatencySnapshot
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveInbound counts a dispatched message and its visitor latency.
func (m *Metrics) ObserveInbound(msgType fix.MsgType, size int, d time.Duration) {
	if m == nil {
		return
	}
	idx := int(msgType)
	if idx >= 0 && idx < len(m.msgCounts) {
		atomic.AddUint64(&m.msgCounts[idx], 1)
	}
	atomic.AddUint64(&m.bytesIn, uint64(size))
	m.dispatchLatency.Observe(d)
}

// ObserveOutbound counts a sent message.
func (m *Metrics) ObserveOutbound(size int) {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.sent, 1)
	atomic.AddUint64(&m.bytesOut, uint64(size))
}

// Snapshot returns a copy of the current metrics values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	msgCounts := make(map[fix.MsgType]uint64)
	for i := range m.msgCounts {
		if v := atomic.LoadUint64(&m.msgCounts[i]); v > 0 {
			msgCounts[fix.MsgType(i)] = v
		}
	}
	return Snapshot{
		MsgCounts:       msgCounts,
		BytesIn:         atomic.LoadUint64(&m.bytesIn),
		BytesOut:        atomic.LoadUint64(&m.bytesOut),
		Sent:            atomic.LoadUint64(&m.sent),
		DispatchLatency: m.dispatchLatency.Snapshot(),
	}
}

// Observe records a duration sample.
func (l *LatencyStats) Observe(d time.Duration) {
	if d < 0 {
		return
	}
	nanos := uint64(d)
	atomic.AddUint64(&l.count, 1)
	atomic.AddUint64(&l.sum, nanos)

	for {
		min := atomic.LoadUint64(&l.min)
		if min != 0 && nanos >= min {
			break
		}
		if atomic.CompareAndSwapUint64(&l.min, min, nanos) {
			break
		}
	}

	for {
		max := atomic.LoadUint64(&l.max)
		if nanos <= max {
			break
		}
		if atomic.CompareAndSwapUint64(&l.max, max, nanos) {
			break
		}
	}
}

// Snapshot returns the aggregated latency stats.
func (l *LatencyStats) Snapshot() LatencySnapshot {
	count := atomic.LoadUint64(&l.count)
	if count == 0 {
		return LatencySnapshot{}
	}
	sum := atomic.LoadUint64(&l.sum)
	min := atomic.LoadUint64(&l.min)
	max := atomic.LoadUint64(&l.max)
	return LatencySnapshot{
		Count: count,
		Min:   time.Duration(min),
		Max:   time.Duration(max),
		Avg:   time.Duration(sum / count),
	}
}
