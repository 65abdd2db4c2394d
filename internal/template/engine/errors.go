package engine

import "fmt"

// IncludeErrorType categorizes include failures.
type IncludeErrorType int

const (
	// IncludeNotFound indicates the referenced file doesn't exist.
	IncludeNotFound IncludeErrorType = iota
	// IncludeOutsideRoot indicates the reference escapes the include root.
	IncludeOutsideRoot
	// IncludeInvalid indicates an empty or non-string reference.
	IncludeInvalid
	// CircularInclude indicates a file includes itself, directly or not.
	CircularInclude
	// MaxIncludeDepth indicates the nesting limit was exceeded.
	MaxIncludeDepth
)

// IncludeError describes a failed include.
type IncludeError struct {
	Type    IncludeErrorType
	Ref     string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *IncludeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("include %q: %s: %v", e.Ref, e.Message, e.Cause)
	}
	return fmt.Sprintf("include %q: %s", e.Ref, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *IncludeError) Unwrap() error {
	return e.Cause
}

// RenderError is the per-template failure of a render. It is recovered by
// the generator; every other failure in a run is fatal.
type RenderError struct {
	// Template is the template path relative to the source root.
	Template string
	// Cause is the underlying read or engine error.
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Template, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error {
	return e.Cause
}
