// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime counter registry for bridge-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// Well-known counter keys maintained by the bridge components.
const (
	MetricSyncReads       = "reads.sync"
	MetricAsyncLaunched   = "reads.async.launched"
	MetricAsyncCompleted  = "reads.async.completed"
	MetricAsyncFailed     = "reads.async.failed"
	MetricNotifySent      = "notify.sent"
	MetricNotifyDropped   = "notify.dropped"
	MetricTransferBytes   = "transfer.bytes"
	MetricTransferRetries = "transfer.retries"
)

// MetricsRegistry holds monotonically increasing counters.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]int64
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]int64),
	}
}

// Add increments a counter by delta. A nil registry is a no-op so
// components can run without wiring metrics.
func (mr *MetricsRegistry) Add(key string, delta int64) {
	if mr == nil {
		return
	}
	mr.mu.Lock()
	mr.metrics[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Inc increments a counter by one.
func (mr *MetricsRegistry) Inc(key string) {
	mr.Add(key, 1)
}

// Get returns the current value of one counter.
func (mr *MetricsRegistry) Get(key string) int64 {
	if mr == nil {
		return 0
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.metrics[key]
}

// GetSnapshot returns the latest counter values.
func (mr *MetricsRegistry) GetSnapshot() map[string]int64 {
	if mr == nil {
		return nil
	}
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]int64, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}
