//go:build !unix

// File: notify/sidechannel_other.go
// Author: momentics <momentics@gmail.com>
//
// Side-channel writer for platforms without named pipes in the
// filesystem namespace. Best effort: the path is opened as a regular
// write-only file.

package notify

import "os"

func writeSidechannel(path string, rec []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(rec)
	return err
}
