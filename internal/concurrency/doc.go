// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package concurrency implements the bounded worker pool that runs
// asynchronous fill tasks. Each worker owns a lock-free local ring;
// submissions that miss the rings land on an unbounded overflow queue,
// so Submit never applies backpressure while the pool itself stays
// bounded.
package concurrency
