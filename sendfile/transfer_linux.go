//go:build linux

// File: sendfile/transfer_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux sendfile(2) strategy. The kernel advances the file offset per
// call; transient errnos retry the same call without touching progress.

package sendfile

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-fs/api"
)

// maxSendfileChunk caps one sendfile(2) request; the kernel may move
// fewer bytes per call anyway.
const maxSendfileChunk = 1 << 30

// sendTo bulk-copies size bytes of f into the borrowed descriptor out.
func (e *Engine) sendTo(out uintptr, f *os.File, size int64) (int64, error) {
	in := int(f.Fd())
	var off int64
	var written int64
	remaining := size
	for remaining > 0 {
		count := remaining
		if count > maxSendfileChunk {
			count = maxSendfileChunk
		}
		n, err := unix.Sendfile(int(out), in, &off, int(count))
		if n > 0 {
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
