package anuvada

import (
	json "github.com/goccy/go-json"
)

// Outcome is the normalised result of one call. Exactly one of Success and
// Failed is true.
type Outcome struct {
	payload any
	raw     []byte
	failure *Failure
}

// NewSuccess builds a successful outcome from a decoded payload and the raw
// body it came from.
func NewSuccess(payload any, raw []byte) Outcome {
	return Outcome{payload: payload, raw: raw}
}

// NewFailure builds a failed outcome. status is 0 unless kind is KindHTTPError.
func NewFailure(kind FailureKind, message string, status int) Outcome {
	return Outcome{failure: &Failure{Kind: kind, Message: message, HTTPStatus: status}}
}

func failedWith(f *Failure) Outcome {
	return Outcome{failure: f}
}

// Success reports whether the call produced a payload.
func (o Outcome) Success() bool {
	return o.failure == nil
}

// Failed reports whether the call produced a Failure.
func (o Outcome) Failed() bool {
	return o.failure != nil
}

// Payload returns the decoded JSON body of a successful call.
func (o Outcome) Payload() any {
	return o.payload
}

// Raw returns the undecoded body of a successful call.
func (o Outcome) Raw() []byte {
	return o.raw
}

// Failure returns the failure of a failed call, or nil.
func (o Outcome) Failure() *Failure {
	return o.failure
}

// Err returns the failure as an error, or nil on success.
func (o Outcome) Err() error {
	if o.failure == nil {
		return nil
	}
	return o.failure
}

// Decode unmarshals the body of a successful call into v. A failed outcome
// returns its Failure.
func (o Outcome) Decode(v any) error {
	if o.failure != nil {
		return o.failure
	}
	if len(o.raw) == 0 {
		return nil
	}
	return json.Unmarshal(o.raw, v)
}

// Field returns a top-level field of an object payload.
func (o Outcome) Field(name string) (any, bool) {
	obj, ok := o.payload.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[name]
	return v, ok
}
