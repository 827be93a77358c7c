// File: api/transfer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Transferrer streams a file's bytes into a borrowed output descriptor.
//
// Implementations are selected at composition time per platform
// capability: a kernel bulk-copy primitive where available, a buffered
// copy loop elsewhere. All implementations honor the same semantics:
// transient OS conditions (interrupted, would-block) are retried in place
// without adjusting progress, a zero-byte transfer without error is
// treated as end-of-stream and still counts as success, and the output
// descriptor is never closed regardless of outcome.
type Transferrer interface {
	// Transfer copies the file at path into the descriptor out, starting
	// at offset zero. Returns the number of bytes moved and an error only
	// for permanent failures (open, stat, or non-transient IO errors).
	Transfer(out uintptr, path string) (int64, error)
}
