package foundation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a failure so callers can branch without string matching.
type ErrorCode string

const (
	ErrorCodeConfiguration ErrorCode = "configuration"
	ErrorCodeNotFound      ErrorCode = "not_found"
	ErrorCodeValidation    ErrorCode = "validation"
	ErrorCodeInternal      ErrorCode = "internal"
)

// Severity indicates the importance/impact of an error.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Fields represents structured context data attached to an error.
type Fields map[string]any

// ClassifiedError provides structured error information with context.
// Generation failures are fatal: they propagate unchanged to the CLI, which
// surfaces them once and exits. Nothing below the CLI logs and swallows.
type ClassifiedError struct {
	Code      ErrorCode
	Severity  Severity
	Message   string
	Context   Fields
	Cause     error
	Operation string
	Component string
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	var parts []string
	if e.Component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Component))
	}
	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("operation=%s", e.Operation))
	}
	parts = append(parts, fmt.Sprintf("code=%s", e.Code), e.Message)
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}
	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ErrorBuilder provides a fluent interface for creating classified errors.
type ErrorBuilder struct {
	err *ClassifiedError
}

// NewError creates a new error builder.
func NewError(code ErrorCode, message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: &ClassifiedError{
			Code:     code,
			Severity: SeverityError,
			Message:  message,
			Context:  make(Fields),
		},
	}
}

// WithSeverity sets the error severity.
func (b *ErrorBuilder) WithSeverity(severity Severity) *ErrorBuilder {
	b.err.Severity = severity
	return b
}

// WithCause sets the underlying cause.
func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	b.err.Cause = cause
	return b
}

// WithContext adds context fields.
func (b *ErrorBuilder) WithContext(fields Fields) *ErrorBuilder {
	for k, v := range fields {
		b.err.Context[k] = v
	}
	return b
}

// WithOperation sets the operation context.
func (b *ErrorBuilder) WithOperation(operation string) *ErrorBuilder {
	b.err.Operation = operation
	return b
}

// WithComponent sets the component context.
func (b *ErrorBuilder) WithComponent(component string) *ErrorBuilder {
	b.err.Component = component
	return b
}

// Build returns the constructed error.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return b.err
}

// ConfigurationError reports a malformed or invalid option value.
func ConfigurationError(message string) *ErrorBuilder {
	return NewError(ErrorCodeConfiguration, message)
}

// NotFoundError reports a configured resource missing on disk.
func NotFoundError(resource string) *ErrorBuilder {
	return NewError(ErrorCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithContext(Fields{"resource": resource})
}

// InternalError reports a programmer or invariant failure.
func InternalError(message string) *ErrorBuilder {
	return NewError(ErrorCodeInternal, message).WithSeverity(SeverityCritical)
}

// IsErrorCode checks if an error has a specific error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var classified *ClassifiedError
	if AsClassified(err, &classified) {
		return classified.Code == code
	}
	return false
}

// AsClassified extracts a ClassifiedError from an error chain.
func AsClassified(err error, target **ClassifiedError) bool {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		*target = classified
		return true
	}
	return false
}
