package facade_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/bridge"
	"github.com/momentics/hioload-fs/facade"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitializeIsIdempotent(t *testing.T) {
	b := facade.New(facade.DefaultConfig())
	defer b.Stop()

	if rc := b.Initialize("/tmp/x"); rc != 0 {
		t.Fatalf("Initialize = %d, want 0", rc)
	}
	want := filepath.Join("/tmp/x", bridge.FIFOName)
	if got := b.SidechannelPath(); got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}

	// a second call with a different directory must not change anything
	// and must still report success
	if rc := b.Initialize("/tmp/y"); rc != 0 {
		t.Fatalf("second Initialize = %d, want 0", rc)
	}
	if got := b.SidechannelPath(); got != want {
		t.Errorf("path changed to %q after second Initialize", got)
	}
}

func TestInitializeEmptyUsesWorkingDir(t *testing.T) {
	b := facade.New(facade.DefaultConfig())
	defer b.Stop()

	if rc := b.Initialize(""); rc != 0 {
		t.Fatalf("Initialize = %d, want 0", rc)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got := b.SidechannelPath(); got != filepath.Join(cwd, bridge.FIFOName) {
		t.Errorf("path = %q", got)
	}
}

func TestReadFileSyncSentinels(t *testing.T) {
	b := facade.New(facade.DefaultConfig())
	defer b.Stop()

	if buf := b.ReadFileSync(filepath.Join(t.TempDir(), "missing")); buf != nil {
		t.Fatal("missing file returned a buffer")
	}

	content := []byte("boundary payload")
	buf := b.ReadFileSync(writeTemp(t, content))
	if buf == nil {
		t.Fatal("sync read returned nil for existing file")
	}
	if buf.State() != api.StateReady || string(buf.Bytes()) != string(content) {
		t.Error("sync read buffer wrong")
	}
}

func TestReadFileAsyncRejectionSentinel(t *testing.T) {
	b := facade.New(facade.DefaultConfig())
	defer b.Stop()

	if buf := b.ReadFileAsync(filepath.Join(t.TempDir(), "missing"), 3); buf != nil {
		t.Fatal("missing file returned a handle")
	}
}

func TestDebugProbesExposed(t *testing.T) {
	cfg := facade.DefaultConfig()
	b := facade.New(cfg)
	defer b.Stop()

	stats := b.Control().Stats()
	if _, ok := stats["requests.outstanding"]; !ok {
		t.Error("outstanding-requests probe missing")
	}
	if _, ok := stats["executor"]; !ok {
		t.Error("executor probe missing")
	}
	if b.Outstanding() != 0 {
		t.Errorf("Outstanding = %d", b.Outstanding())
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if facade.Default() != facade.Default() {
		t.Fatal("Default constructed two bridges")
	}
	// package-level boundary functions route through the same default
	content := []byte("default payload")
	buf := facade.ReadFileSync(writeTemp(t, content))
	if buf == nil || string(buf.Bytes()) != string(content) {
		t.Fatal("package-level sync read failed")
	}
	if facade.ReadFileAsync(filepath.Join(t.TempDir(), "missing"), 8) != nil {
		t.Fatal("package-level async read ignored failure")
	}
}
