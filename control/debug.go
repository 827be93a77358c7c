// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug probes for bridge internals: outstanding requests and
// executor state are the two probes the facade registers.

package control

import "sync"

// DebugProbes holds named probe functions evaluated on demand, so a
// probe can report live state (registry length, worker counts) without
// the bridge pushing updates.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState evaluates every probe and returns the combined snapshot.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
