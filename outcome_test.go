package anuvada

import (
	"errors"
	"testing"
)

func TestOutcomeVariants(t *testing.T) {
	success := NewSuccess(map[string]any{"status": "healthy"}, []byte(`{"status":"healthy"}`))
	if !success.Success() || success.Failed() {
		t.Error("Success outcome reports failure")
	}
	if success.Failure() != nil || success.Err() != nil {
		t.Error("Success outcome carries a failure")
	}

	failure := NewFailure(KindTimeout, "Request timeout", 0)
	if failure.Success() || !failure.Failed() {
		t.Error("Failed outcome reports success")
	}
	if failure.Payload() != nil || failure.Raw() != nil {
		t.Error("Failed outcome carries a payload")
	}
	if !errors.Is(failure.Err(), ErrTimeout) {
		t.Error("Expected failed outcome to match ErrTimeout")
	}
}

func TestOutcomeDecode(t *testing.T) {
	outcome := NewSuccess(nil, []byte(`{"status":"healthy","service":"svc","version":"1.0.0"}`))

	var resp HealthResponse
	if err := outcome.Decode(&resp); err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}
	if resp.Status != "healthy" || resp.Version != "1.0.0" {
		t.Errorf("Unexpected decoded value %+v", resp)
	}

	failed := NewFailure(KindHTTPError, "Endpoint not found", 404)
	if err := failed.Decode(&resp); !errors.Is(err, ErrHTTP) {
		t.Errorf("Expected Decode() on failure to return the failure, got %v", err)
	}
}

func TestOutcomeField(t *testing.T) {
	outcome := NewSuccess(map[string]any{"kannada": "ನೀರು"}, nil)
	if v, ok := outcome.Field("kannada"); !ok || v != "ನೀರು" {
		t.Errorf("Field(kannada) = %v, %v", v, ok)
	}
	if _, ok := outcome.Field("missing"); ok {
		t.Error("Field(missing) reported present")
	}
	if _, ok := NewSuccess([]any{1}, nil).Field("x"); ok {
		t.Error("Field on array payload reported present")
	}
}

func TestFailureKindString(t *testing.T) {
	tests := map[FailureKind]string{
		KindTimeout:      "Timeout",
		KindHTTPError:    "HttpError",
		KindNetworkError: "NetworkError",
		FailureKind(0):   "Unknown",
	}
	for kind, want := range tests {
		if kind.String() != want {
			t.Errorf("String() = %q, want %q", kind.String(), want)
		}
	}
}

func TestLanguageValid(t *testing.T) {
	if !English.Valid() || !Kannada.Valid() {
		t.Error("Expected english and kannada to be valid")
	}
	if Language("hindi").Valid() || Language("").Valid() {
		t.Error("Expected other languages to be invalid")
	}
}
