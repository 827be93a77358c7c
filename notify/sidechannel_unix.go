//go:build unix

// File: notify/sidechannel_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unix side-channel writer over a named pipe.

package notify

import (
	"golang.org/x/sys/unix"
)

// writeSidechannel opens the FIFO write-only without blocking and writes
// the whole record. Opening with O_NONBLOCK yields ENXIO when no reader
// is attached, which the caller treats as a dropped notification.
// Interrupted writes are retried; a full pipe drops the record.
func writeSidechannel(path string, rec []byte) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	for off := 0; off < len(rec); {
		n, err := unix.Write(fd, rec[off:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		off += n
	}
	return nil
}
