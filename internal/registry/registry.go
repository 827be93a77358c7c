// File: internal/registry/registry.go
// Package registry
// Author: momentics <momentics@gmail.com>
//
// Sharded, thread-safe table of outstanding asynchronous read requests.
// Entries exist between launch and completion so debug probes can
// enumerate in-flight reads; the table never owns the buffers it tracks.

package registry

import (
	"encoding/binary"
	"hash/fnv"
	"sync"

	"github.com/momentics/hioload-fs/api"
)

// Registry implements sharded storage keyed by request id.
type Registry struct {
	shards []*shard
	mask   uint32
}

type shard struct {
	mu      sync.RWMutex
	entries map[api.RequestID]api.FileBuffer
}

// New constructs a sharded registry with shardCount shards.
func New(shardCount int) *Registry {
	if shardCount <= 0 {
		shardCount = 16
	}
	// find power-of-two shards for bitmasking
	m := nextPowerOfTwo(uint32(shardCount))
	shards := make([]*shard, m)
	for i := range shards {
		shards[i] = &shard{entries: make(map[api.RequestID]api.FileBuffer)}
	}
	return &Registry{shards: shards, mask: m - 1}
}

// shard picks the correct shard for a given id.
func (r *Registry) shard(id api.RequestID) *shard {
	return r.shards[fnv32(uint64(id))&r.mask]
}

// Add records an outstanding request. A duplicate id overwrites the
// previous entry; id uniqueness among outstanding requests is the
// caller's contract.
func (r *Registry) Add(id api.RequestID, b api.FileBuffer) {
	sh := r.shard(id)
	sh.mu.Lock()
	sh.entries[id] = b
	sh.mu.Unlock()
}

// Get fetches an outstanding request's buffer if present.
func (r *Registry) Get(id api.RequestID) (api.FileBuffer, bool) {
	sh := r.shard(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	b, ok := sh.entries[id]
	return b, ok
}

// Remove drops a completed request.
func (r *Registry) Remove(id api.RequestID) {
	sh := r.shard(id)
	sh.mu.Lock()
	delete(sh.entries, id)
	sh.mu.Unlock()
}

// Range applies fn to all outstanding requests.
func (r *Registry) Range(fn func(api.RequestID, api.FileBuffer)) {
	for _, sh := range r.shards {
		sh.mu.RLock()
		for id, b := range sh.entries {
			fn(id, b)
		}
		sh.mu.RUnlock()
	}
}

// Len counts outstanding requests across all shards.
func (r *Registry) Len() int {
	n := 0
	for _, sh := range r.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// fnv32 hashes a request id to uint32.
func fnv32(id uint64) uint32 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	h := fnv.New32a()
	h.Write(buf[:])
	return h.Sum32()
}

// nextPowerOfTwo returns the next power-of-two >= v.
func nextPowerOfTwo(v uint32) uint32 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}
