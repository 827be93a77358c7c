// File: facade/boundary.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide default assembly and the flat boundary functions exposed
// to hosts. Components never reach for this default themselves; it
// exists only here, at the outermost composition point.

package facade

import (
	"sync"

	"github.com/momentics/hioload-fs/api"
)

var (
	defaultOnce   sync.Once
	defaultBridge *FileBridge
)

// Default returns the lazily constructed process-wide bridge.
func Default() *FileBridge {
	defaultOnce.Do(func() {
		defaultBridge = New(DefaultConfig())
	})
	return defaultBridge
}

// Initialize sets the runtime directory of the default bridge.
// Always returns 0.
func Initialize(dir string) int {
	return Default().Initialize(dir)
}

// ReadFileSync reads a whole file through the default bridge; nil on
// failure.
func ReadFileSync(path string) api.FileBuffer {
	return Default().ReadFileSync(path)
}

// ReadFileAsync launches an asynchronous read through the default
// bridge; nil on failure, in which case no notification is ever sent.
func ReadFileAsync(path string, id uint64) api.FileBuffer {
	return Default().ReadFileAsync(path, id)
}

// TransferFile streams a file into the borrowed descriptor through the
// default bridge; 0 on success, -1 on failure.
func TransferFile(out uintptr, path string) int {
	return Default().TransferFile(out, path)
}
