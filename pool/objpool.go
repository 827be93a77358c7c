// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "sync"

// ObjectPool is the recycling contract the staging BytePool is built on.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool adapts sync.Pool to a typed Get/Put pair. The transfer
// fallback path churns through staging chunks; pooling them keeps the
// copy loop allocation-free after warmup.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}
