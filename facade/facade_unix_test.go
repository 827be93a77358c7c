//go:build unix

package facade_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-fs/bridge"
	"github.com/momentics/hioload-fs/facade"
	"github.com/momentics/hioload-fs/notify"
)

func TestAsyncReadEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fifo := filepath.Join(dir, bridge.FIFOName)
	require.NoError(t, unix.Mkfifo(fifo, 0o600))

	b := facade.New(facade.DefaultConfig())
	defer b.Stop()
	require.Zero(t, b.Initialize(dir))

	// host side attaches before the read is launched
	r, err := os.OpenFile(fifo, os.O_RDONLY|unix.O_NONBLOCK, 0)
	require.NoError(t, err)
	defer r.Close()

	content := bytes.Repeat([]byte("end to end "), 4096)
	src := filepath.Join(dir, "payload")
	require.NoError(t, os.WriteFile(src, content, 0o644))

	const requestID = 0xFEED
	buf := b.ReadFileAsync(src, requestID)
	require.NotNil(t, buf)
	require.EqualValues(t, len(content), buf.Len())

	// observe the completion record, then the buffer is safe to read
	rec := make([]byte, notify.RecordSize)
	var nread int
	require.Eventually(t, func() bool {
		m, _ := r.Read(rec[nread:])
		if m > 0 {
			nread += m
		}
		return nread == notify.RecordSize
	}, 2*time.Second, time.Millisecond)

	id, err := notify.DecodeRecord(rec)
	require.NoError(t, err)
	require.EqualValues(t, requestID, id.Wire())
	require.True(t, bytes.Equal(buf.Bytes(), content))
	require.NoError(t, buf.Err())
}
