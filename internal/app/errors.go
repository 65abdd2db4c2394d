package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ConfigFailed indicates the configuration could not be resolved.
	ConfigFailed AppErrorType = iota
	// DataLoadFailed indicates the data file could not be loaded.
	DataLoadFailed
	// DiscoveryFailed indicates templates could not be listed.
	DiscoveryFailed
	// GenerateFailed indicates a fatal error while generating output.
	GenerateFailed
)

// AppError represents an application-layer error. Every AppError ends the
// run; per-template render failures are reported in the result instead.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}
