// control/control.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// api.Control implementation aggregating config, metrics, and probes.

package control

import "github.com/momentics/hioload-fs/api"

// controlImpl bundles the three control-plane primitives behind api.Control.
type controlImpl struct {
	config  *ConfigStore
	metrics *MetricsRegistry
	probes  *DebugProbes
}

var _ api.Control = (*controlImpl)(nil)

// New constructs a Control backed by fresh stores.
func New() api.Control {
	return &controlImpl{
		config:  NewConfigStore(),
		metrics: NewMetricsRegistry(),
		probes:  NewDebugProbes(),
	}
}

// NewWith constructs a Control around existing stores, so components
// sharing a MetricsRegistry surface through the same Control.
func NewWith(cfg *ConfigStore, metrics *MetricsRegistry, probes *DebugProbes) api.Control {
	if cfg == nil {
		cfg = NewConfigStore()
	}
	if metrics == nil {
		metrics = NewMetricsRegistry()
	}
	if probes == nil {
		probes = NewDebugProbes()
	}
	return &controlImpl{config: cfg, metrics: metrics, probes: probes}
}

func (c *controlImpl) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *controlImpl) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges counter values with probe dumps.
func (c *controlImpl) Stats() map[string]any {
	out := make(map[string]any)
	for k, v := range c.metrics.GetSnapshot() {
		out[k] = v
	}
	for k, v := range c.probes.DumpState() {
		out[k] = v
	}
	return out
}

func (c *controlImpl) OnReload(fn func()) {
	c.config.OnReload(fn)
}

func (c *controlImpl) RegisterDebugProbe(name string, fn func() any) {
	c.probes.RegisterProbe(name, fn)
}
