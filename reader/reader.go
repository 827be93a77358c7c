// File: reader/reader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Synchronous and asynchronous file reads with buffer ownership handoff.
//
// The asynchronous path hands the caller an owned buffer before any
// content exists in it. The fill runs on the executor and completes the
// handle, then emits the completion record regardless of fill outcome;
// the record carries no success flag, so a host can only learn about a
// failed fill through in-process inspection of the handle.

package reader

import (
	"io"
	"math"
	"os"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/buffer"
	"github.com/momentics/hioload-fs/control"
	"github.com/momentics/hioload-fs/internal/registry"
)

// Reader launches file reads against a shared executor and notifier.
type Reader struct {
	exec     api.Executor
	notifier api.Notifier
	reg      *registry.Registry
	metrics  *control.MetricsRegistry
}

// New constructs a Reader. metrics may be nil; reg may be nil when no
// in-flight introspection is needed.
func New(exec api.Executor, notifier api.Notifier, reg *registry.Registry, metrics *control.MetricsRegistry) *Reader {
	return &Reader{
		exec:     exec,
		notifier: notifier,
		reg:      reg,
		metrics:  metrics,
	}
}

// ReadFile reads the whole file synchronously into a Ready buffer of
// length len(content)+1 with a zero terminator.
func (r *Reader) ReadFile(path string) (api.FileBuffer, error) {
	if path == "" {
		return nil, api.ErrInvalidArgument
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, api.NewError(api.ErrCodeIO, "read file").
			WithContext("path", path).WithContext("cause", err.Error())
	}
	buf := buffer.New(len(data))
	copy(buf.Alias(), data)
	buf.Complete(nil)
	r.metrics.Inc(control.MetricSyncReads)
	return buf, nil
}

// LaunchRead opens the file, allocates a buffer of file length + 1, and
// returns the handle immediately in the Producing state. An independent
// fill task reads the content into the caller-owned memory through a
// non-owning alias, completes the handle, and notifies with the request
// id. On open or stat failure the error return is the only signal: no
// notification is ever emitted for that id.
func (r *Reader) LaunchRead(path string, id api.RequestID) (api.FileBuffer, error) {
	if path == "" {
		return nil, api.ErrInvalidArgument
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, api.NewError(api.ErrCodeIO, "open file").
			WithContext("path", path).WithContext("cause", err.Error())
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, api.NewError(api.ErrCodeIO, "stat file").
			WithContext("path", path).WithContext("cause", err.Error())
	}

	length, err := payloadLength(st.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	buf := buffer.New(length)
	if r.reg != nil {
		r.reg.Add(id, buf)
	}

	// capture the fill destination now: a caller releasing the handle
	// before the worker runs must not invalidate the worker's alias
	dst := buf.Alias()
	task := func() {
		r.fill(f, buf, dst, id)
	}
	if err := r.exec.Submit(task); err != nil {
		// never accepted: undo the handoff so no notification can fire
		if r.reg != nil {
			r.reg.Remove(id)
		}
		f.Close()
		buf.Release()
		return nil, err
	}
	r.metrics.Inc(control.MetricAsyncLaunched)
	return buf, nil
}

// payloadLength validates that a file of the given size fits an in-memory
// buffer of size+1 bytes on this platform. On 32-bit builds a file of
// 2 GiB or more would otherwise truncate to a wrong (or negative) length.
func payloadLength(size int64) (int, error) {
	if size < 0 || size > int64(math.MaxInt-1) {
		return 0, api.NewError(api.ErrCodeInvalidArgument, "file too large for in-memory buffer").
			WithContext("size", size)
	}
	return int(size), nil
}

// fill performs the blocking read into the caller-owned memory and runs
// the completion handshake. The notification fires unconditionally of
// the fill outcome; the buffer content is unspecified when the read
// failed partway.
func (r *Reader) fill(f *os.File, buf *buffer.Owned, dst []byte, id api.RequestID) {
	defer f.Close()

	var ferr error
	if buf.Canceled() {
		ferr = api.ErrReadCanceled
	} else {
		_, err := io.ReadFull(f, dst)
		if err != nil {
			ferr = api.NewError(api.ErrCodeIO, "fill read").
				WithContext("cause", err.Error())
		}
	}
	buf.Complete(ferr)
	if r.reg != nil {
		r.reg.Remove(id)
	}
	if ferr != nil {
		r.metrics.Inc(control.MetricAsyncFailed)
	}
	r.metrics.Inc(control.MetricAsyncCompleted)
	r.notifier.Notify(id)
}
