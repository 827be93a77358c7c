//go:build windows

// File: sendfile/transfer_windows.go
// Author: momentics <momentics@gmail.com>
//
// Buffered fallback for Windows. The handle is wrapped as a writer
// without taking ownership, so it is never closed here.

package sendfile

import (
	"os"

	"golang.org/x/sys/windows"
)

// borrowedHandle adapts a raw handle to io.Writer without owning it.
type borrowedHandle windows.Handle

func (h borrowedHandle) Write(p []byte) (int, error) {
	var done uint32
	err := windows.WriteFile(windows.Handle(h), p, &done, nil)
	return int(done), err
}

func (e *Engine) sendTo(out uintptr, f *os.File, _ int64) (int64, error) {
	return e.copyBuffered(borrowedHandle(out), f)
}
