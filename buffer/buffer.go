// File: buffer/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owned zero-terminated file buffer with the Producing/Ready/Released
// protocol. The handle is the single source of truth for whether the
// content may be read: callers must not touch the payload until the
// Producing -> Ready transition has been observed.

package buffer

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-fs/api"
)

// Owned implements api.FileBuffer. The backing slice is always payload
// length + 1, with the final byte held at zero as a terminator sentinel.
type Owned struct {
	data     []byte
	length   int
	state    atomic.Int32
	canceled atomic.Bool

	mu   sync.Mutex // guards err and the Ready transition
	err  error
	done chan struct{}
}

var _ api.FileBuffer = (*Owned)(nil)

// New allocates an Owned buffer for a payload of length bytes. The
// terminator byte is zeroed immediately; the payload region is
// unspecified until Complete is called.
func New(length int) *Owned {
	b := &Owned{
		data:   make([]byte, length+1),
		length: length,
		done:   make(chan struct{}),
	}
	b.data[length] = 0
	b.state.Store(int32(api.StateProducing))
	return b
}

// Alias returns the payload region for the fill worker, or nil once the
// buffer has been released. The worker captures this before the fill is
// scheduled and holds it as a non-owning alias only; it must not be
// retained after Complete. Callers other than the fill worker must not
// use it.
func (b *Owned) Alias() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil
	}
	return b.data[:b.length]
}

// Complete records the outcome of the fill attempt and transitions the
// buffer to Ready. Idempotent after the first call. The content is
// unspecified when err is non-nil, but the state still becomes Ready:
// completion is unconditional of fill outcome.
func (b *Owned) Complete(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state.Load() != int32(api.StateProducing) {
		return
	}
	b.err = err
	b.state.Store(int32(api.StateReady))
	close(b.done)
}

// Bytes returns the payload once Ready, nil otherwise.
func (b *Owned) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.State() != api.StateReady {
		return nil
	}
	return b.data[:b.length]
}

// Raw returns the full zero-terminated slice once Ready, nil otherwise.
func (b *Owned) Raw() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.State() != api.StateReady {
		return nil
	}
	return b.data
}

// Len returns the payload length, excluding the terminator.
func (b *Owned) Len() int {
	return b.length
}

// State reports the current lifecycle state.
func (b *Owned) State() api.BufferState {
	return api.BufferState(b.state.Load())
}

// Done is closed on the Producing -> Ready transition.
func (b *Owned) Done() <-chan struct{} {
	return b.done
}

// Err returns the fill outcome. Only meaningful once Ready.
func (b *Owned) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Cancel requests that a not-yet-started fill be skipped. The completion
// signal still fires either way; cancellation never suppresses the
// side-channel record. Returns api.ErrAlreadyCompleted once Ready.
func (b *Owned) Cancel() error {
	if b.State() != api.StateProducing {
		return api.ErrAlreadyCompleted
	}
	b.canceled.Store(true)
	return nil
}

// Canceled reports whether Cancel was observed.
func (b *Owned) Canceled() bool {
	return b.canceled.Load()
}

// Release gives the memory back to the runtime. Safe to call in any
// state; a fill worker still holding the alias keeps the underlying
// array alive until it finishes.
func (b *Owned) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Store(int32(api.StateReleased))
	b.data = nil
}
