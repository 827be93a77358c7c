// File: sendfile/transfer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral entry point of the transfer engine. The platform
// strategy is fixed at build time; sendTo is provided by exactly one of
// the transfer_*.go files.

package sendfile

import (
	"os"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/control"
	"github.com/momentics/hioload-fs/pool"
)

// chunkSize is the staging buffer size of the buffered fallback path.
const chunkSize = 64 * 1024

// Engine implements api.Transferrer.
type Engine struct {
	staging *pool.BytePool
	metrics *control.MetricsRegistry
}

var _ api.Transferrer = (*Engine)(nil)

// New constructs a transfer engine. metrics may be nil.
func New(metrics *control.MetricsRegistry) *Engine {
	return &Engine{
		staging: pool.NewBytePool(chunkSize),
		metrics: metrics,
	}
}

// Transfer copies the file at path into the borrowed descriptor out,
// starting at offset zero. A zero-length source succeeds immediately
// with no write. The descriptor is never closed here, regardless of
// outcome; its lifecycle belongs entirely to the caller.
func (e *Engine) Transfer(out uintptr, path string) (int64, error) {
	if path == "" {
		return 0, api.ErrInvalidArgument
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, api.NewError(api.ErrCodeIO, "open source").
			WithContext("path", path).WithContext("cause", err.Error())
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return 0, api.NewError(api.ErrCodeIO, "stat source").
			WithContext("path", path).WithContext("cause", err.Error())
	}
	size := st.Size()
	if size == 0 {
		return 0, nil
	}

	written, err := e.sendTo(out, f, size)
	e.metrics.Add(control.MetricTransferBytes, written)
	return written, err
}

// noteRetry counts one transient-condition retry.
func (e *Engine) noteRetry() {
	e.metrics.Inc(control.MetricTransferRetries)
}
