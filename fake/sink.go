// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake transfer sink: an in-memory writer that can simulate a bounded
// number of transient would-block failures before accepting bytes.

package fake

import (
	"bytes"
	"sync"
	"syscall"
)

// Sink collects written bytes and optionally fails the first
// TransientFailures writes with EAGAIN.
type Sink struct {
	mu                sync.Mutex
	buf               bytes.Buffer
	TransientFailures int
	writes            int
}

// NewSink creates a sink that fails the first transientFailures writes
// with a would-block condition.
func NewSink(transientFailures int) *Sink {
	return &Sink{TransientFailures: transientFailures}
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.writes <= s.TransientFailures {
		return 0, syscall.EAGAIN
	}
	return s.buf.Write(p)
}

// Bytes returns everything accepted so far.
func (s *Sink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, s.buf.Len())
	copy(out, s.buf.Bytes())
	return out
}

// Writes returns the total number of Write calls, including failed ones.
func (s *Sink) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
