// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api defines the public contracts of the hioload-fs bridge:
// owned file buffers with an explicit fill protocol, the at-most-once
// completion notifier, the bulk transfer engine, and the task executor.
//
// All implementations live in sibling packages; api carries no
// dependencies and no state.
package api
