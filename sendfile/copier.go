// File: sendfile/copier.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffered copy loop shared by the non-sendfile platforms. Stages
// through pooled fixed-size chunks and writes each chunk fully before
// reading the next.

package sendfile

import (
	"errors"
	"io"
	"syscall"

	"github.com/momentics/hioload-fs/api"
)

// isTransient reports whether err is an interrupted or would-block
// condition that the engine retries in place without backoff.
func isTransient(err error) bool {
	return errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN)
}

// copyBuffered streams src into dst through a pooled staging chunk.
// Stops at end-of-file; any non-transient write failure aborts.
func (e *Engine) copyBuffered(dst io.Writer, src io.Reader) (int64, error) {
	buf := e.staging.GetBuffer()
	defer e.staging.PutBuffer(buf)

	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if werr := e.writeFull(dst, buf[:n]); werr != nil {
				return written, werr
			}
			written += int64(n)
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			if isTransient(rerr) {
				e.noteRetry()
				continue
			}
			return written, api.NewError(api.ErrCodeIO, "copy read").
				WithContext("cause", rerr.Error())
		}
	}
}

// writeFull pushes the whole chunk, spinning on transient conditions.
func (e *Engine) writeFull(dst io.Writer, p []byte) error {
	for off := 0; off < len(p); {
		n, err := dst.Write(p[off:])
		off += n
		if err != nil {
			if isTransient(err) {
				e.noteRetry()
				continue
			}
			return api.NewError(api.ErrCodeIO, "copy write").
				WithContext("cause", err.Error())
		}
	}
	return nil
}
