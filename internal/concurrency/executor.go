// File: internal/concurrency/executor.go
// Package concurrency implements the fill-task executor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across a bounded set of worker goroutines,
// using lock-free local rings with an unbounded FIFO overflow queue.
// The overflow queue deliberately has no upper bound: submitters are
// never backpressured, only the degree of parallelism is capped.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-fs/api"
)

// TaskFunc is a unit of work to execute.
type TaskFunc func()

// Executor manages a pool of worker goroutines.
type Executor struct {
	overflowMu  sync.Mutex                 // guards overflow
	overflow    *queue.Queue               // unbounded FIFO fallback for full rings
	localQueues []*lockFreeQueue[TaskFunc] // per-worker lock-free rings
	workers     []*worker                  // worker instances
	closeCh     chan struct{}              // signals executor shutdown
	closed      int32                      // atomic flag: 1 if closed
	numWorkers  int32                      // current number of workers
	mu          sync.Mutex                 // protects resizing operations

	// statistics
	totalTasks     int64
	completedTasks int64
}

var _ api.Executor = (*Executor)(nil)

// NewExecutor creates a new Executor with the given number of workers and
// per-worker ring capacity. If numWorkers <= 0, defaults to
// runtime.NumCPU(); if ringCapacity <= 0, defaults to 1024.
func NewExecutor(numWorkers, ringCapacity int) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if ringCapacity <= 0 {
		ringCapacity = 1024
	}
	e := &Executor{
		overflow:   queue.New(),
		closeCh:    make(chan struct{}),
		numWorkers: int32(numWorkers),
	}
	e.localQueues = make([]*lockFreeQueue[TaskFunc], 0, numWorkers)
	e.workers = make([]*worker, 0, numWorkers)
	for i := 0; i < numWorkers; i++ {
		e.spawnWorker(ringCapacity)
	}
	return e
}

// spawnWorker appends one worker with a fresh local ring. Callers either
// hold e.mu or run before the executor is visible to other goroutines.
func (e *Executor) spawnWorker(ringCapacity int) {
	q := newLockFreeQueue[TaskFunc](ringCapacity)
	w := &worker{
		id:         len(e.workers),
		executor:   e,
		localQueue: q,
		stopCh:     make(chan struct{}),
	}
	e.localQueues = append(e.localQueues, q)
	e.workers = append(e.workers, w)
	go w.run()
}

// Submit enqueues a task for execution, returning api.ErrExecutorClosed
// if the executor is closed. Submit never blocks: tasks that miss the
// local rings are parked on the unbounded overflow queue.
func (e *Executor) Submit(task func()) error {
	if atomic.LoadInt32(&e.closed) == 1 {
		return api.ErrExecutorClosed
	}
	n := atomic.AddInt64(&e.totalTasks, 1)
	// attempt local enqueue based on round-robin ID
	e.mu.Lock()
	idx := int(n % int64(len(e.localQueues)))
	q := e.localQueues[idx]
	e.mu.Unlock()
	if q.Enqueue(task) {
		return nil
	}
	// ring full: park on the overflow queue
	e.overflowMu.Lock()
	e.overflow.Add(TaskFunc(task))
	e.overflowMu.Unlock()
	return nil
}

// stealOverflow pops one parked task, if any.
func (e *Executor) stealOverflow() (TaskFunc, bool) {
	e.overflowMu.Lock()
	defer e.overflowMu.Unlock()
	if e.overflow.Length() == 0 {
		return nil, false
	}
	task, _ := e.overflow.Remove().(TaskFunc)
	return task, task != nil
}

// NumWorkers returns the current number of active workers.
func (e *Executor) NumWorkers() int {
	return int(atomic.LoadInt32(&e.numWorkers))
}

// Resize adjusts worker count at runtime. Growing spawns workers with
// the default ring capacity; shrinking stops the newest workers after
// they finish their current task.
func (e *Executor) Resize(newCount int) {
	if newCount <= 0 || atomic.LoadInt32(&e.closed) == 1 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	cur := len(e.workers)
	switch {
	case newCount > cur:
		for i := cur; i < newCount; i++ {
			e.spawnWorker(1024)
		}
	case newCount < cur:
		for _, w := range e.workers[newCount:] {
			close(w.stopCh)
		}
		e.workers = e.workers[:newCount]
		e.localQueues = e.localQueues[:newCount]
	}
	atomic.StoreInt32(&e.numWorkers, int32(newCount))
}

// Close shuts down the executor and signals workers to exit once their
// local rings and the overflow queue drain.
func (e *Executor) Close() {
	if atomic.CompareAndSwapInt32(&e.closed, 0, 1) {
		close(e.closeCh)
		e.mu.Lock()
		defer e.mu.Unlock()
		for _, w := range e.workers {
			close(w.stopCh)
		}
	}
}

// Stats returns basic executor metrics.
func (e *Executor) Stats() map[string]int64 {
	return map[string]int64{
		"total_tasks":     atomic.LoadInt64(&e.totalTasks),
		"completed_tasks": atomic.LoadInt64(&e.completedTasks),
		"pending_tasks":   atomic.LoadInt64(&e.totalTasks) - atomic.LoadInt64(&e.completedTasks),
		"num_workers":     int64(e.NumWorkers()),
	}
}

// worker represents a single executor goroutine.
type worker struct {
	id         int
	executor   *Executor
	localQueue *lockFreeQueue[TaskFunc]
	stopCh     chan struct{}
	stopped    int32
}

// run is the main worker loop: local ring first, then overflow steal.
func (w *worker) run() {
	defer atomic.StoreInt32(&w.stopped, 1)
	for {
		if task, ok := w.localQueue.Dequeue(); ok {
			w.executeTask(task)
			continue
		}
		if task, ok := w.executor.stealOverflow(); ok {
			w.executeTask(task)
			continue
		}
		select {
		case <-w.stopCh:
			// drain whatever is still queued locally before exiting
			for task, ok := w.localQueue.Dequeue(); ok; task, ok = w.localQueue.Dequeue() {
				w.executeTask(task)
			}
			return
		default:
			// backoff to reduce CPU spinning
			time.Sleep(time.Millisecond)
		}
	}
}

// executeTask runs the task and updates statistics, recovering from panics.
func (w *worker) executeTask(task TaskFunc) {
	defer func() {
		if r := recover(); r != nil {
			// swallow panic to keep worker alive
		}
		atomic.AddInt64(&w.executor.completedTasks, 1)
	}()
	task()
}
