// File: api/result.go
// Author: momentics@gmail.com
//
// Cancellation contract shared by long-lived handles.

package api

// Cancelable is any operation that may be canceled.
type Cancelable interface {
	// Cancel attempts to abort the operation. Returns ErrAlreadyCompleted
	// if the operation already finished.
	Cancel() error
	// Done signals completion/cancellation.
	Done() <-chan struct{}
	// Err returns the completion or cancellation reason, nil on success.
	Err() error
}
