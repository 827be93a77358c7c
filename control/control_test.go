package control_test

import (
	"testing"
	"time"

	"github.com/momentics/hioload-fs/control"
)

func TestMetricsCounters(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Inc(control.MetricNotifySent)
	mr.Add(control.MetricTransferBytes, 4096)
	mr.Add(control.MetricTransferBytes, 4096)

	if got := mr.Get(control.MetricNotifySent); got != 1 {
		t.Errorf("sent = %d", got)
	}
	if got := mr.Get(control.MetricTransferBytes); got != 8192 {
		t.Errorf("bytes = %d", got)
	}
	snap := mr.GetSnapshot()
	if snap[control.MetricTransferBytes] != 8192 {
		t.Errorf("snapshot = %v", snap)
	}
}

func TestNilMetricsRegistryIsNoop(t *testing.T) {
	var mr *control.MetricsRegistry
	mr.Inc("anything") // must not panic
	if mr.Get("anything") != 0 {
		t.Fatal("nil registry returned data")
	}
	if mr.GetSnapshot() != nil {
		t.Fatal("nil registry returned snapshot")
	}
}

func TestConfigStoreSnapshotIsolation(t *testing.T) {
	cs := control.NewConfigStore()
	cs.SetConfig(map[string]any{"k": 1})
	snap := cs.GetSnapshot()
	snap["k"] = 2
	if cs.GetSnapshot()["k"] != 1 {
		t.Fatal("snapshot mutation leaked into store")
	}
}

func TestConfigStoreReloadListener(t *testing.T) {
	cs := control.NewConfigStore()
	fired := make(chan struct{}, 1)
	cs.OnReload(func() { fired <- struct{}{} })
	cs.SetConfig(map[string]any{"k": "v"})
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("reload listener not invoked")
	}
}

func TestDebugProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("answer", func() any { return 42 })
	state := dp.DumpState()
	if state["answer"] != 42 {
		t.Errorf("state = %v", state)
	}
}

func TestControlAggregation(t *testing.T) {
	mr := control.NewMetricsRegistry()
	c := control.NewWith(nil, mr, nil)
	mr.Inc(control.MetricSyncReads)
	c.RegisterDebugProbe("probe", func() any { return "ok" })

	stats := c.Stats()
	if stats[control.MetricSyncReads] != int64(1) {
		t.Errorf("stats = %v", stats)
	}
	if stats["probe"] != "ok" {
		t.Errorf("stats = %v", stats)
	}

	if err := c.SetConfig(map[string]any{"x": true}); err != nil {
		t.Fatal(err)
	}
	if c.GetConfig()["x"] != true {
		t.Error("config not stored")
	}
}
