//go:build unix

package notify_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/bridge"
	"github.com/momentics/hioload-fs/control"
	"github.com/momentics/hioload-fs/notify"
)

func newFIFOConfig(t *testing.T) (*bridge.Config, string) {
	t.Helper()
	dir := t.TempDir()
	fifo := filepath.Join(dir, bridge.FIFOName)
	require.NoError(t, unix.Mkfifo(fifo, 0o600))
	cfg := bridge.NewConfig()
	cfg.SetRuntimeDir(dir)
	return cfg, fifo
}

func TestNotifyDeliversRecord(t *testing.T) {
	cfg, fifo := newFIFOConfig(t)
	metrics := control.NewMetricsRegistry()
	n := notify.NewFIFO(cfg, metrics)

	r, err := os.OpenFile(fifo, os.O_RDONLY|unix.O_NONBLOCK, 0)
	require.NoError(t, err)
	defer r.Close()

	n.Notify(0xAABBCCDD)

	rec := make([]byte, notify.RecordSize)
	var nread int
	require.Eventually(t, func() bool {
		m, err := r.Read(rec[nread:])
		if m > 0 {
			nread += m
		}
		return err == nil && nread == notify.RecordSize
	}, time.Second, 5*time.Millisecond)

	id, err := notify.DecodeRecord(rec)
	require.NoError(t, err)
	require.EqualValues(t, 0xAABBCCDD, id)
	require.EqualValues(t, 1, metrics.Get(control.MetricNotifySent))
}

func TestNotifyDropsWithoutReader(t *testing.T) {
	cfg, _ := newFIFOConfig(t)
	metrics := control.NewMetricsRegistry()
	n := notify.NewFIFO(cfg, metrics)

	// no reader attached: the non-blocking open fails and the signal is
	// silently dropped
	n.Notify(1)

	require.EqualValues(t, 1, metrics.Get(control.MetricNotifyDropped))
	require.EqualValues(t, 0, metrics.Get(control.MetricNotifySent))
}

func TestNotifyMissingChannelIsSwallowed(t *testing.T) {
	cfg := bridge.NewConfig()
	cfg.SetRuntimeDir(filepath.Join(t.TempDir(), "nope"))
	n := notify.NewFIFO(cfg, nil)

	// must not panic or block
	n.Notify(2)
}

func TestConcurrentNotificationsAllArrive(t *testing.T) {
	cfg, fifo := newFIFOConfig(t)
	n := notify.NewFIFO(cfg, nil)

	r, err := os.OpenFile(fifo, os.O_RDONLY|unix.O_NONBLOCK, 0)
	require.NoError(t, err)
	defer r.Close()

	const count = 8
	for i := 0; i < count; i++ {
		go n.Notify(api.RequestID(0x100 + i))
	}

	got := make(map[uint32]bool)
	buf := make([]byte, notify.RecordSize)
	var nread int
	require.Eventually(t, func() bool {
		m, _ := r.Read(buf[nread:])
		if m > 0 {
			nread += m
		}
		if nread == notify.RecordSize {
			id, err := notify.DecodeRecord(buf)
			require.NoError(t, err)
			got[id.Wire()] = true
			nread = 0
		}
		return len(got) == count
	}, 2*time.Second, time.Millisecond)
}
