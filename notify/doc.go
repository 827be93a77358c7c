// File: notify/doc.go
// Author: momentics <momentics@gmail.com>

// Package notify implements the completion side channel: fixed-size
// big-endian records written to a named pipe, one per finished
// asynchronous read, with a documented at-most-once delivery guarantee.
package notify
