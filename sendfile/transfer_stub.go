//go:build !unix && !windows

// File: sendfile/transfer_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for platforms without raw descriptor writes.

package sendfile

import (
	"os"

	"github.com/momentics/hioload-fs/api"
)

func (e *Engine) sendTo(out uintptr, f *os.File, _ int64) (int64, error) {
	return 0, api.ErrNotSupported
}
