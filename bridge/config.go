// File: bridge/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime directory configuration and side-channel path resolution.
//
// The runtime directory is the filesystem location agreed upon with the
// host for locating the completion FIFO. It is an explicitly constructed
// configuration object injected at composition time; the only process-wide
// instance lives in the facade's default assembly.

package bridge

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// FIFOName is the fixed file name of the completion side channel
	// inside the runtime directory.
	FIFOName = "bridge.fifo"

	// EnvRuntimeDir overrides the runtime directory when no explicit
	// initialization supplied one.
	EnvRuntimeDir = "HIOLOAD_RUNTIME_DIR"

	// fallbackRuntimeDir is used when even the working directory cannot
	// be determined.
	fallbackRuntimeDir = "/tmp"
)

// Config stores the runtime directory. Written at most once, read by
// many; the mutex only ever contends during the initialization window.
type Config struct {
	mu  sync.Mutex
	dir string
	set bool
}

// NewConfig returns an uninitialized runtime directory configuration.
func NewConfig() *Config {
	return &Config{}
}

// SetRuntimeDir stores the runtime directory. Only the first successful
// call takes effect; later calls are silently ignored and still report
// true, matching the idempotent initialization contract. An empty dir
// falls back to the working directory, then to the fixed literal.
func (c *Config) SetRuntimeDir(dir string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set {
		return true
	}
	if dir == "" {
		dir = workingDirOrFallback()
	}
	c.dir = dir
	c.set = true
	return true
}

// RuntimeDir returns the stored directory and whether one has been set.
func (c *Config) RuntimeDir() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dir, c.set
}

// SidechannelPath resolves the location of the completion FIFO.
// Priority: stored runtime directory, then the EnvRuntimeDir override,
// then the current working directory, then the fixed literal fallback.
func (c *Config) SidechannelPath() string {
	c.mu.Lock()
	dir, set := c.dir, c.set
	c.mu.Unlock()
	if !set {
		if env := os.Getenv(EnvRuntimeDir); env != "" {
			dir = env
		} else {
			dir = workingDirOrFallback()
		}
	}
	return filepath.Join(dir, FIFOName)
}

// workingDirOrFallback returns the process working directory, or the
// fixed literal when it cannot be determined.
func workingDirOrFallback() string {
	cwd, err := os.Getwd()
	if err != nil {
		return fallbackRuntimeDir
	}
	return cwd
}
