//go:build darwin

// File: sendfile/transfer_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin sendfile(2) strategy. Unlike Linux, the wrapper does not
// advance the offset, and a transient failure may still have moved
// bytes; progress is applied before the retry decision.

package sendfile

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-fs/api"
)

// sendTo bulk-copies size bytes of f into the borrowed descriptor out.
func (e *Engine) sendTo(out uintptr, f *os.File, size int64) (int64, error) {
	in := int(f.Fd())
	var off int64
	var written int64
	remaining := size
	for remaining > 0 {
		n, err := unix.Sendfile(int(out), in, &off, int(remaining))
		if n > 0 {
			off += int64(n)
			written += int64(n)
			remaining -= int64(n)
		}
		if err == unix.EINTR || err == unix.EAGAIN {
			e.noteRetry()
			continue
		}
		if err != nil {
			return written, api.NewError(api.ErrCodeIO, "sendfile").
				WithContext("cause", err.Error())
		}
		if n == 0 {
			// source ended early; partial completion still succeeds
			break
		}
	}
	return written, nil
}
