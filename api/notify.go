// File: api/notify.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Notifier delivers completion signals for asynchronous reads.
//
// Delivery is fire-and-forget with an at-most-once guarantee: a signal is
// never duplicated and never retried, and a delivery failure (for example
// no reader attached to the channel) is swallowed. A fill worker must
// never block or fail because the host has not attached yet; lost
// notifications are an accepted degradation the host covers with its own
// liveness strategy. Implementations must not upgrade this to
// at-least-once, as that changes host-visible behavior.
type Notifier interface {
	// Notify signals completion of the request. Never blocks on a missing
	// receiver and never reports an error.
	Notify(id RequestID)
}
