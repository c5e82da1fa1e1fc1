// Package errors provides custom error types for the ChatSafe API client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrConnectionFailed = errors.New("connection failed")
	ErrInvalidResponse  = errors.New("invalid response format")
)

// ConnectionError represents a failure to reach the ChatSafe server
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connection to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("connection to %s failed", e.Endpoint)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *ConnectionError) Is(target error) bool {
	if target == ErrConnectionFailed {
		return true
	}
	_, ok := target.(*ConnectionError)
	return ok
}

// NewConnectionError creates a new ConnectionError
func NewConnectionError(endpoint string, err error) *ConnectionError {
	return &ConnectionError{Endpoint: endpoint, Err: err}
}

// APIError represents an HTTP-level failure from the server
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// ParseError represents a response body that is not valid structured data
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// IsConnectionError reports whether err is a connection failure
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsParseError reports whether err is a malformed-response failure
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// GetHTTPStatus extracts the HTTP status code from an APIError, or 0
func GetHTTPStatus(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint from a structured error, or ""
func GetEndpoint(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Endpoint
	}
	var ce *ConnectionError
	if errors.As(err, &ce) {
		return ce.Endpoint
	}
	return ""
}
