// File: notify/notifier.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO-backed completion notifier. Fire-and-forget, at-most-once: a
// fill worker must never block or fail because the host has not
// attached a reader, so every delivery failure is swallowed and only
// counted. The channel is opened and closed per notification; there is
// no descriptor pooling, which keeps concurrent notifications isolated
// from one another.

package notify

import (
	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/bridge"
	"github.com/momentics/hioload-fs/control"
)

// FIFONotifier writes completion records to the side-channel FIFO
// resolved through the runtime directory configuration.
type FIFONotifier struct {
	cfg     *bridge.Config
	metrics *control.MetricsRegistry
}

var _ api.Notifier = (*FIFONotifier)(nil)

// NewFIFO constructs a notifier bound to the given runtime config.
// metrics may be nil.
func NewFIFO(cfg *bridge.Config, metrics *control.MetricsRegistry) *FIFONotifier {
	return &FIFONotifier{cfg: cfg, metrics: metrics}
}

// Notify writes one 4-byte big-endian record for the request. The FIFO
// is opened write-only and non-blocking, so a missing reader fails the
// open immediately instead of stalling the worker. Failures are dropped.
func (n *FIFONotifier) Notify(id api.RequestID) {
	rec := EncodeRecord(id)
	if err := writeSidechannel(n.cfg.SidechannelPath(), rec[:]); err != nil {
		n.metrics.Inc(control.MetricNotifyDropped)
		return
	}
	n.metrics.Inc(control.MetricNotifySent)
}
