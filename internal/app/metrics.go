package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts frames and key presses handled by the run loop.
type Metrics struct {
	frames     atomic.Uint64
	frameNs    atomic.Int64
	frameMaxNs atomic.Int64
	keys       atomic.Uint64
	keyNs      atomic.Int64
	start      time.Time
}

// NewMetrics creates an empty tracker.
func NewMetrics() *Metrics {
	return &Metrics{start: time.Now()}
}

// RecordFrame records the time taken to draw one frame.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frames.Add(1)
	m.frameNs.Add(ns)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			return
		}
	}
}

// RecordKey records the time taken to handle one key press.
func (m *Metrics) RecordKey(d time.Duration) {
	m.keys.Add(1)
	m.keyNs.Add(d.Nanoseconds())
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames   uint64
	AvgFrame time.Duration
	MaxFrame time.Duration
	Keys     uint64
	AvgKey   time.Duration
	Uptime   time.Duration
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:   m.frames.Load(),
		MaxFrame: time.Duration(m.frameMaxNs.Load()),
		Keys:     m.keys.Load(),
		Uptime:   time.Since(m.start),
	}
	if s.Frames > 0 {
		s.AvgFrame = time.Duration(m.frameNs.Load() / int64(s.Frames))
	}
	if s.Keys > 0 {
		s.AvgKey = time.Duration(m.keyNs.Load() / int64(s.Keys))
	}
	return s
}
