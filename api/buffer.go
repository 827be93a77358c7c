// File: api/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owned file buffer handle with an explicit fill protocol.
//
// A buffer handed out by an asynchronous read is owned by the caller from
// the moment it is returned, but its content is only stable once the
// handle has reached StateReady. The fill worker keeps a non-owning alias
// to the same memory; that alias is a lookup, not an ownership relation.

package api

// BufferState is the lifecycle position of an owned file buffer.
type BufferState int32

const (
	// StateProducing: memory is allocated and owned by the caller, but a
	// fill worker may still be writing into it. Content reads are invalid.
	StateProducing BufferState = iota
	// StateReady: the fill attempt finished (success or not) and no
	// native reference to the memory remains. Content is stable.
	StateReady
	// StateReleased: the caller gave the memory back. Any further use of
	// the handle is invalid.
	StateReleased
)

// FileBuffer is an owned, zero-terminated file content buffer.
//
// The payload occupies bytes [0, Len()); one extra terminator byte, always
// zero, follows it for string-style consumption by the host. The
// Producing -> Ready transition is signaled both in-process (Done) and on
// the completion side channel; the side-channel record is the only signal
// a host across the boundary may rely on.
type FileBuffer interface {
	Cancelable

	// Bytes returns the payload, or nil unless the buffer is Ready.
	Bytes() []byte

	// Raw returns the full zero-terminated backing slice (Len()+1 bytes),
	// or nil unless the buffer is Ready.
	Raw() []byte

	// Len returns the payload length, excluding the terminator.
	Len() int

	// State reports the current lifecycle state.
	State() BufferState

	// Done is closed on the Producing -> Ready transition.
	Done() <-chan struct{}

	// Release returns the memory to the runtime. After Release the handle
	// must not be used.
	Release()
}
