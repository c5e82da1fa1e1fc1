package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConnectionError(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")
	err := NewConnectionError("http://127.0.0.1:8081/v1/chat/completions", underlying)

	if err == nil {
		t.Fatal("Expected non-nil error")
	}

	if !errors.Is(err, ErrConnectionFailed) {
		t.Error("Expected error to match ErrConnectionFailed sentinel")
	}
	if !errors.Is(err, underlying) {
		t.Error("Expected Unwrap to expose the underlying error")
	}

	other := NewAPIError(400, "test", "other error")
	if err.Is(other) {
		t.Error("Expected error not to match APIError")
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(500, "/v1/chat/completions", "chat completion failed")

	expected := "API error [500] at /v1/chat/completions: chat completion failed"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	// Without status code
	err = NewAPIError(0, "/health", "unreachable")
	expected = "API error at /health: unreachable"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("response body is not valid JSON", "choices.0")

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("Expected error to match ErrInvalidResponse sentinel")
	}
	if err.Path != "choices.0" {
		t.Errorf("Path = %s, want choices.0", err.Path)
	}

	stdErr := errors.New("standard error")
	if err.Is(stdErr) {
		t.Error("Expected error not to match standard error")
	}
}

func TestClassificationHelpers(t *testing.T) {
	connErr := NewConnectionError("endpoint", nil)
	apiErr := NewAPIError(503, "endpoint", "down")
	parseErr := NewParseError("bad body", "")
	plainErr := errors.New("plain")

	if !IsConnectionError(connErr) {
		t.Error("IsConnectionError(connErr) = false")
	}
	if IsConnectionError(apiErr) || IsConnectionError(plainErr) {
		t.Error("IsConnectionError matched a non-connection error")
	}

	if !IsParseError(parseErr) {
		t.Error("IsParseError(parseErr) = false")
	}
	if IsParseError(connErr) {
		t.Error("IsParseError matched a connection error")
	}

	if got := GetHTTPStatus(apiErr); got != 503 {
		t.Errorf("GetHTTPStatus(apiErr) = %d, want 503", got)
	}
	if got := GetHTTPStatus(plainErr); got != 0 {
		t.Errorf("GetHTTPStatus(plainErr) = %d, want 0", got)
	}

	if got := GetEndpoint(connErr); got != "endpoint" {
		t.Errorf("GetEndpoint(connErr) = %s, want endpoint", got)
	}
}

func TestWrappedErrors(t *testing.T) {
	inner := NewAPIError(429, "/v1/chat/completions", "rate limited")
	wrapped := fmt.Errorf("request failed: %w", inner)

	if got := GetHTTPStatus(wrapped); got != 429 {
		t.Errorf("GetHTTPStatus(wrapped) = %d, want 429", got)
	}
}
