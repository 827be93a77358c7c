// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-fs.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrExecutorClosed   = fmt.Errorf("executor is closed")
	ErrBufferReleased   = fmt.Errorf("buffer is released")
	ErrBufferProducing  = fmt.Errorf("buffer is still being produced")
	ErrAlreadyCompleted = fmt.Errorf("operation already completed")
	ErrReadCanceled     = fmt.Errorf("read canceled before fill")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrNotSupported     = fmt.Errorf("operation not supported")
	ErrNotFound         = fmt.Errorf("resource not found")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeIO
	ErrCodeCanceled
	ErrCodeNotSupported
	ErrCodeNotFound
	ErrCodeInternal
)

// Error represents a structured error with code and context.
//
// Structured errors stay inside the library; the facade flattens every
// failure to the boundary sentinels (nil buffer, -1 status).
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
