// File: internal/concurrency/lock_free_queue.go
// Package concurrency provides a lock-free queue for executors.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded multi-producer/multi-consumer ring buffer. Each slot carries a
// sequence number that publishes it to the other side, so concurrent
// producers reserving slots via CAS never overwrite each other.

package concurrency

import "sync/atomic"

// lockFreeQueue is a bounded ring safe for any number of producers and
// consumers. A slot is writable when its sequence equals the tail that
// reserves it, and readable once the producer bumps the sequence past
// the reserving tail.
type lockFreeQueue[T any] struct {
	mask  uint64
	slots []ringSlot[T]
	head  uint64
	tail  uint64
}

type ringSlot[T any] struct {
	seq uint64
	val T
}

// newLockFreeQueue creates a new queue with capacity rounded to power of two.
func newLockFreeQueue[T any](capacity int) *lockFreeQueue[T] {
	size := 1
	for size < capacity {
		size <<= 1
	}
	q := &lockFreeQueue[T]{mask: uint64(size - 1), slots: make([]ringSlot[T], size)}
	for i := range q.slots {
		q.slots[i].seq = uint64(i)
	}
	return q
}

// Enqueue adds val; returns false if full.
func (q *lockFreeQueue[T]) Enqueue(val T) bool {
	for {
		tail := atomic.LoadUint64(&q.tail)
		slot := &q.slots[tail&q.mask]
		seq := atomic.LoadUint64(&slot.seq)
		switch {
		case seq == tail:
			if atomic.CompareAndSwapUint64(&q.tail, tail, tail+1) {
				slot.val = val
				atomic.StoreUint64(&slot.seq, tail+1)
				return true
			}
		case seq < tail:
			// slot still holds an unconsumed element a full lap behind
			return false
		}
		// lost the race to another producer: reload and retry
	}
}

// Dequeue removes and returns an item; ok false if empty.
func (q *lockFreeQueue[T]) Dequeue() (item T, ok bool) {
	for {
		head := atomic.LoadUint64(&q.head)
		slot := &q.slots[head&q.mask]
		seq := atomic.LoadUint64(&slot.seq)
		switch {
		case seq == head+1:
			if atomic.CompareAndSwapUint64(&q.head, head, head+1) {
				item = slot.val
				var zero T
				slot.val = zero
				atomic.StoreUint64(&slot.seq, head+uint64(len(q.slots)))
				return item, true
			}
		case seq <= head:
			// producer has not published this slot yet
			return item, false
		}
		// stale head: reload and retry
	}
}
