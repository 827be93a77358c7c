// File: reader/doc.go
// Author: momentics <momentics@gmail.com>

// Package reader implements the read launchers: a synchronous whole-file
// read and the asynchronous launcher that transfers buffer ownership to
// the caller before the content is filled in.
package reader
