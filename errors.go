package anuvada

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel failures for errors.Is. They match any Failure of the same kind.
var (
	// ErrTimeout matches failures where the client's timer fired first
	ErrTimeout = &Failure{Kind: KindTimeout, Message: timeoutMessage}

	// ErrHTTP matches failures caused by a non-2xx response
	ErrHTTP = &Failure{Kind: KindHTTPError}

	// ErrNetwork matches transport level failures
	ErrNetwork = &Failure{Kind: KindNetworkError}
)

const timeoutMessage = "Request timeout"

// errRequestTimeout is the cancellation cause set by the per-call timer.
var errRequestTimeout = errors.New("anuvada: request timeout")

// Failure is the failed variant of an Outcome. Message is what the user sees.
type Failure struct {
	Kind       FailureKind
	Message    string
	HTTPStatus int
	Cause      error

	RequestID string
	Method    string
	URL       string
	Endpoint  string
	Timestamp time.Time
	Duration  time.Duration
}

// Error implements error interface.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", f.Kind, f.Message)
	if f.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", f.RequestID, msg)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Cause
}

// Is compares failure kinds for errors.Is.
func (f *Failure) Is(target error) bool {
	if f == nil {
		return false
	}
	if t, ok := target.(*Failure); ok {
		return f.Kind == t.Kind
	}
	return false
}

// Transient reports whether retrying by hand may help. 4xx responses other
// than 429 are not transient.
func (f *Failure) Transient() bool {
	if f == nil {
		return false
	}
	switch f.Kind {
	case KindTimeout, KindNetworkError:
		return true
	case KindHTTPError:
		return f.HTTPStatus == 429 || f.HTTPStatus >= 500
	default:
		return false
	}
}

// DebugInfo renders a multi-line string with diagnostic context.
func (f *Failure) DebugInfo() string {
	if f == nil {
		return "Failure: <nil>"
	}
	info := fmt.Sprintf("Kind: %s\n", f.Kind)
	info += fmt.Sprintf("Message: %s\n", f.Message)
	if f.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", f.RequestID)
	}
	if f.Method != "" {
		info += fmt.Sprintf("Method: %s\n", f.Method)
	}
	if f.URL != "" {
		info += fmt.Sprintf("URL: %s\n", f.URL)
	}
	if f.Endpoint != "" {
		info += fmt.Sprintf("Endpoint: %s\n", f.Endpoint)
	}
	if f.HTTPStatus > 0 {
		info += fmt.Sprintf("Status Code: %d\n", f.HTTPStatus)
	}
	if !f.Timestamp.IsZero() {
		info += fmt.Sprintf("Timestamp: %s\n", f.Timestamp.Format(time.RFC3339))
	}
	if f.Duration > 0 {
		info += fmt.Sprintf("Duration: %v\n", f.Duration)
	}
	if f.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", f.Cause)
	}
	return info
}

// AsFailure extracts a *Failure from err.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// ConfigError reports invalid client options found by ValidateConfiguration.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return "anuvada: invalid configuration: " + strings.Join(e.Problems, "; ")
}
