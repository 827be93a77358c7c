// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake completion notifier for testing: records every signal in memory
// instead of touching a side channel.

package fake

import (
	"sync"

	"github.com/momentics/hioload-fs/api"
)

// Notifier is a recording implementation of api.Notifier.
type Notifier struct {
	mu      sync.Mutex
	signals []api.RequestID
}

var _ api.Notifier = (*Notifier)(nil)

// NewNotifier creates an empty recording notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify records the signal.
func (n *Notifier) Notify(id api.RequestID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.signals = append(n.signals, id)
}

// Count returns how many signals were recorded.
func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.signals)
}

// Notified reports whether a signal for id was recorded, compared on the
// truncated wire form like a real side channel would.
func (n *Notifier) Notified(id api.RequestID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, s := range n.signals {
		if s.Wire() == id.Wire() {
			return true
		}
	}
	return false
}

// Signals returns a copy of all recorded signals in arrival order.
func (n *Notifier) Signals() []api.RequestID {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]api.RequestID, len(n.signals))
	copy(out, n.signals)
	return out
}
