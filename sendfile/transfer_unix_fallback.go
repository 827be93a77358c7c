//go:build unix && !linux && !darwin

// File: sendfile/transfer_unix_fallback.go
// Author: momentics <momentics@gmail.com>
//
// Buffered fallback for Unix platforms without a wired bulk-copy
// primitive. The descriptor is wrapped as a writer without taking
// ownership, so it is never closed here.

package sendfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// borrowedFD adapts a raw descriptor to io.Writer without owning it.
type borrowedFD int

func (fd borrowedFD) Write(p []byte) (int, error) {
	n, err := unix.Write(int(fd), p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func (e *Engine) sendTo(out uintptr, f *os.File, _ int64) (int64, error) {
	return e.copyBuffered(borrowedFD(out), f)
}
