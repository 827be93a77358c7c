// File: pool/doc.go
// Author: momentics <momentics@gmail.com>

// Package pool provides reusable staging buffers for the buffered
// transfer fallback. Buffers handed to callers by asynchronous reads are
// never pooled; ownership of those passes to the caller outright.
package pool
