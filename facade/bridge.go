// File: facade/bridge.go
// Unified facade layer for the hioload-fs library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the FileBridge struct, which aggregates the core
// components of the library behind a single facade: the runtime
// directory configuration, the FIFO completion notifier, the fill
// executor, the outstanding-request registry, the read launcher, and
// the transfer engine. The facade also carries the sentinel-return
// boundary methods that mirror the host-facing contract.

package facade

import (
	"log"
	"sync"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/bridge"
	"github.com/momentics/hioload-fs/control"
	"github.com/momentics/hioload-fs/internal/concurrency"
	"github.com/momentics/hioload-fs/internal/registry"
	"github.com/momentics/hioload-fs/notify"
	"github.com/momentics/hioload-fs/reader"
	"github.com/momentics/hioload-fs/sendfile"
)

// Config holds parameters immutable per run.
type Config struct {
	NumWorkers     int    // Number of fill executor workers
	RingCapacity   int    // Capacity of per-worker task rings
	RegistryShards int    // Shards of the outstanding-request registry
	RuntimeDir     string // Optional explicit runtime directory
	EnableMetrics  bool   // Whether to maintain counter metrics
	EnableDebug    bool   // Whether to register debug probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		NumWorkers:     4,    // Four fill workers
		RingCapacity:   1024, // 1024 queued fills per worker ring
		RegistryShards: 16,   // 16 registry shards
		RuntimeDir:     "",   // Resolve lazily (env, then cwd)
		EnableMetrics:  true, // Enable built-in counters
		EnableDebug:    true, // Enable debug probes
	}
}

// FileBridge is the main facade type.
type FileBridge struct {
	runtime  *bridge.Config
	notifier api.Notifier
	executor *concurrency.Executor
	registry *registry.Registry
	reader   *reader.Reader
	engine   api.Transferrer
	control  api.Control
	metrics  *control.MetricsRegistry

	config  *Config
	mu      sync.Mutex
	stopped bool
}

// New constructs a FileBridge with the given configuration, wiring the
// notifier, executor, registry, reader, and transfer engine together.
func New(cfg *Config) *FileBridge {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	b := &FileBridge{config: cfg}

	b.runtime = bridge.NewConfig()
	if cfg.RuntimeDir != "" {
		b.runtime.SetRuntimeDir(cfg.RuntimeDir)
	}

	if cfg.EnableMetrics {
		b.metrics = control.NewMetricsRegistry()
	}
	probes := control.NewDebugProbes()
	b.control = control.NewWith(nil, b.metrics, probes)

	b.notifier = notify.NewFIFO(b.runtime, b.metrics)
	b.executor = concurrency.NewExecutor(cfg.NumWorkers, cfg.RingCapacity)
	b.registry = registry.New(cfg.RegistryShards)
	b.reader = reader.New(b.executor, b.notifier, b.registry, b.metrics)
	b.engine = sendfile.New(b.metrics)

	b.control.SetConfig(map[string]any{
		"num_workers":     cfg.NumWorkers,
		"ring_capacity":   cfg.RingCapacity,
		"registry_shards": cfg.RegistryShards,
	})
	if cfg.EnableDebug {
		b.control.RegisterDebugProbe("requests.outstanding", func() any {
			return b.registry.Len()
		})
		b.control.RegisterDebugProbe("executor", func() any {
			return b.executor.Stats()
		})
	}
	return b
}

// Initialize stores the runtime directory used to locate the side
// channel. Idempotent; only the first call takes effect and later calls
// are silently ignored. Always returns 0, matching the boundary
// contract that initialization errors are swallowed.
func (b *FileBridge) Initialize(dir string) int {
	b.runtime.SetRuntimeDir(dir)
	return 0
}

// SidechannelPath resolves the current completion channel location.
func (b *FileBridge) SidechannelPath() string {
	return b.runtime.SidechannelPath()
}

// ReadFileSync reads a whole file and returns a Ready zero-terminated
// buffer, or nil on any failure.
func (b *FileBridge) ReadFileSync(path string) api.FileBuffer {
	buf, err := b.reader.ReadFile(path)
	if err != nil {
		log.Printf("[facade] sync read failed: %v", err)
		return nil
	}
	return buf
}

// ReadFileAsync launches an asynchronous read and returns the owned
// buffer handle immediately, or nil on any failure to accept the
// request. The caller must not read the payload until the completion
// record for id has been observed on the side channel (or Done fires
// in-process). No notification is ever sent for a nil return.
func (b *FileBridge) ReadFileAsync(path string, id uint64) api.FileBuffer {
	buf, err := b.reader.LaunchRead(path, api.RequestID(id))
	if err != nil {
		log.Printf("[facade] async read launch failed: %v", err)
		return nil
	}
	return buf
}

// TransferFile streams the file at path into the borrowed descriptor.
// Returns 0 on success (including partial end-of-stream completion) and
// -1 on failure; the descriptor is never closed.
func (b *FileBridge) TransferFile(out uintptr, path string) int {
	if _, err := b.engine.Transfer(out, path); err != nil {
		log.Printf("[facade] transfer failed: %v", err)
		return -1
	}
	return 0
}

// Control returns the control interface for config, metrics, and probes.
func (b *FileBridge) Control() api.Control {
	return b.control
}

// Outstanding returns the number of in-flight asynchronous reads.
func (b *FileBridge) Outstanding() int {
	return b.registry.Len()
}

// Stop shuts down the fill executor. Queued fills are drained first, so
// already-accepted requests still complete their notification handshake.
// Calling Stop twice is a no-op.
func (b *FileBridge) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	b.executor.Close()
	b.stopped = true
}
