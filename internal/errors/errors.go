// Package errors provides a lightweight structured error type (PrefgenError)
// for category-based classification and exit-code mapping in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a prefgen error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"
	CategoryUsage  ErrorCategory = "usage"
	CategoryParse  ErrorCategory = "parse"

	// Output generation errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Everything else
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// PrefgenError is a structured error with category, severity, and context
type PrefgenError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Line     int           `json:"line,omitempty"` // 1-based input line for parse errors
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for PrefgenError
type ContextFields map[string]any

// Error implements the error interface
func (e *PrefgenError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, msg, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, msg)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *PrefgenError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *PrefgenError) WithContext(key string, value any) *PrefgenError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new PrefgenError
func New(category ErrorCategory, severity ErrorSeverity, message string) *PrefgenError {
	return &PrefgenError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new PrefgenError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *PrefgenError {
	return &PrefgenError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// ParseAt creates a parse error anchored to an input line
func ParseAt(line int, message string) *PrefgenError {
	return &PrefgenError{
		Category: CategoryParse,
		Severity: SeverityFatal,
		Message:  message,
		Line:     line,
	}
}

// UsageError creates a new usage error (invalid invocation)
func UsageError(message string) *PrefgenError {
	return &PrefgenError{
		Category: CategoryUsage,
		Severity: SeverityError,
		Message:  message,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if pe, ok := err.(*PrefgenError); ok {
		return pe.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a PrefgenError
func GetCategory(err error) ErrorCategory {
	if pe, ok := err.(*PrefgenError); ok {
		return pe.Category
	}
	return CategoryInternal
}
