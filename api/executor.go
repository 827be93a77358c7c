// File: api/executor.go
// Author: momentics <momentics@gmail.com>
//
// Executor contract for background fill dispatch.

package api

// Executor abstracts the worker pool that runs asynchronous fill tasks.
type Executor interface {
	// Submit schedules task for execution.
	Submit(task func()) error

	// NumWorkers returns current number of active worker routines.
	NumWorkers() int

	// Resize adjusts the concurrency at runtime.
	Resize(newCount int)

	// Close shuts the executor down; queued tasks are drained first.
	Close()
}
