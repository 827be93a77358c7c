// File: api/request.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// RequestID is a caller-supplied correlation token for an asynchronous
// read. The API accepts 64 bits but the completion side channel carries
// only the low 32; callers must keep ids unique modulo 2^32 among
// outstanding requests or completion records become ambiguous.
type RequestID uint64

// Wire returns the truncated 32-bit form transmitted on the side channel.
func (r RequestID) Wire() uint32 {
	return uint32(r)
}
