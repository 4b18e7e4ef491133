package anuvada

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFailureError(t *testing.T) {
	f := &Failure{Kind: KindNetworkError, Message: "connection refused"}
	if f.Error() != "NetworkError: connection refused" {
		t.Errorf("Unexpected error string %q", f.Error())
	}

	f.RequestID = "req-7"
	if f.Error() != "[req-7] NetworkError: connection refused" {
		t.Errorf("Unexpected error string with request ID %q", f.Error())
	}

	var nilFailure *Failure
	if nilFailure.Error() != "<nil>" {
		t.Errorf("Expected <nil> for nil failure, got %q", nilFailure.Error())
	}
}

func TestFailureUnwrap(t *testing.T) {
	cause := errors.New("underlying error")
	f := &Failure{Kind: KindNetworkError, Message: "x", Cause: cause}

	if !errors.Is(f, cause) {
		t.Error("Expected errors.Is to reach the cause")
	}

	var nilFailure *Failure
	if nilFailure.Unwrap() != nil {
		t.Error("Expected nil unwrap for nil failure")
	}
}

func TestFailureIsMatchesKind(t *testing.T) {
	tests := []struct {
		kind     FailureKind
		sentinel error
	}{
		{KindTimeout, ErrTimeout},
		{KindHTTPError, ErrHTTP},
		{KindNetworkError, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := &Failure{Kind: tt.kind, Message: "m"}
			if !errors.Is(f, tt.sentinel) {
				t.Errorf("Expected %s to match its sentinel", tt.kind)
			}
			for _, other := range []error{ErrTimeout, ErrHTTP, ErrNetwork} {
				if other != tt.sentinel && errors.Is(f, other) {
					t.Errorf("%s unexpectedly matched %v", tt.kind, other)
				}
			}
			if errors.Is(f, errors.New("plain")) {
				t.Error("Failure must not match a plain error")
			}
		})
	}
}

func TestFailureTransient(t *testing.T) {
	tests := []struct {
		name string
		f    *Failure
		want bool
	}{
		{"timeout", &Failure{Kind: KindTimeout}, true},
		{"network", &Failure{Kind: KindNetworkError}, true},
		{"server error", &Failure{Kind: KindHTTPError, HTTPStatus: 503}, true},
		{"too many requests", &Failure{Kind: KindHTTPError, HTTPStatus: 429}, true},
		{"bad request", &Failure{Kind: KindHTTPError, HTTPStatus: 400}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Transient(); got != tt.want {
				t.Errorf("Transient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFailureDebugInfo(t *testing.T) {
	f := &Failure{
		Kind:       KindHTTPError,
		Message:    "Translation failed",
		HTTPStatus: 500,
		RequestID:  "req-1",
		Method:     "POST",
		URL:        "http://localhost:5000/api/translate",
		Endpoint:   PathTranslate,
		Timestamp:  time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		Duration:   120 * time.Millisecond,
		Cause:      errors.New("boom"),
	}

	info := f.DebugInfo()
	for _, want := range []string{
		"Kind: HttpError",
		"Message: Translation failed",
		"Request ID: req-1",
		"Method: POST",
		"Endpoint: /api/translate",
		"Status Code: 500",
		"Timestamp: 2026-10-14T09:00:00Z",
		"Duration: 120ms",
		"Cause: boom",
	} {
		if !strings.Contains(info, want) {
			t.Errorf("DebugInfo() missing %q:\n%s", want, info)
		}
	}

	var nilFailure *Failure
	if nilFailure.DebugInfo() != "Failure: <nil>" {
		t.Errorf("Unexpected nil DebugInfo %q", nilFailure.DebugInfo())
	}
}

func TestAsFailure(t *testing.T) {
	outcome := NewFailure(KindHTTPError, "Endpoint not found", 404)

	f, ok := AsFailure(outcome.Err())
	if !ok || f.HTTPStatus != 404 {
		t.Fatalf("AsFailure() = %v, %v", f, ok)
	}

	if _, ok := AsFailure(errors.New("plain")); ok {
		t.Error("AsFailure() matched a plain error")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Problems: []string{"a", "b"}}
	if err.Error() != "anuvada: invalid configuration: a; b" {
		t.Errorf("Unexpected error string %q", err.Error())
	}
}
