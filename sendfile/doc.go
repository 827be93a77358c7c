// File: sendfile/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package sendfile streams file content into a borrowed output
// descriptor. Where the kernel offers a bulk file-to-descriptor copy the
// engine uses it, avoiding any staging through user-space memory; other
// platforms fall back to a pooled buffered copy loop. All variants share
// the same contract: transient OS conditions are retried in place, a
// zero-byte transfer ends the loop as success, and the destination
// descriptor is never closed.
package sendfile
