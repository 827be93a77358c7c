// File: bridge/doc.go
// Author: momentics <momentics@gmail.com>

// Package bridge holds the runtime directory configuration shared between
// this library and its host, and resolves the completion side-channel
// path from it.
package bridge
