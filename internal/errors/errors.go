package errors

import "fmt"

// ErrorType represents the type of error
type ErrorType string

const (
	// Error types
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeTransport   ErrorType = "transport"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeAggregation ErrorType = "aggregation"
)

// APIError is the single error shape surfaced by this layer. StatusCode is
// zero when the failure happened before or without an HTTP response.
type APIError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode,omitempty"`
	err        error     // wrapped cause, kept for logging
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the cause to errors.Is/As chains
func (e *APIError) Unwrap() error {
	return e.err
}

// NewValidationError creates a validation error, raised locally before any
// network call is made.
func NewValidationError(msg string) *APIError {
	return &APIError{
		Type:    ErrorTypeValidation,
		Message: msg,
	}
}

// NewTransportError creates a transport error. statusCode is 0 for network
// failures with no HTTP response.
func NewTransportError(msg string, statusCode int, err error) *APIError {
	return &APIError{
		Type:       ErrorTypeTransport,
		Message:    msg,
		StatusCode: statusCode,
		err:        err,
	}
}

// NewNotFoundError creates a not found error (explicit 404 semantics)
func NewNotFoundError(msg string) *APIError {
	return &APIError{
		Type:       ErrorTypeNotFound,
		Message:    msg,
		StatusCode: 404,
	}
}

// NewAggregationError marks a data-shape contract violation from the backend.
// Aggregation itself is total, so seeing one of these means the backend broke
// the schema, and the failure must surface rather than be swallowed.
func NewAggregationError(msg string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeAggregation,
		Message: msg,
		err:     err,
	}
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeNotFound
	}
	return false
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeValidation
	}
	return false
}

// IsTransport checks if an error is a Transport error
func IsTransport(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeTransport
	}
	return false
}
