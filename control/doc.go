// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration control, and debug introspection layer
// for the hioload-fs bridge.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for reload listeners
//   - Counter telemetry for reads, notifications, and transfers
//   - State export, debug hooks, and probe registration
package control
