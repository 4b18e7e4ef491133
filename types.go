package anuvada

import (
	"net/http"
	"time"
)

// Method is the HTTP method of a request. Only GET and POST are used by the API.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// RequestConfig describes a single call made through Client.Request.
type RequestConfig struct {
	Method  Method
	Body    []byte
	Headers map[string]string
	// Timeout overrides the client default when positive.
	Timeout time.Duration
}

// FailureKind classifies a failed outcome.
type FailureKind int

const (
	KindTimeout FailureKind = iota + 1
	KindHTTPError
	KindNetworkError
)

func (k FailureKind) String() string {
	switch k {
	case KindTimeout:
		return "Timeout"
	case KindHTTPError:
		return "HttpError"
	case KindNetworkError:
		return "NetworkError"
	default:
		return "Unknown"
	}
}

// Language selects the voice used by the speak endpoint.
type Language string

const (
	English Language = "english"
	Kannada Language = "kannada"
)

// Valid reports whether the backend accepts the language.
func (l Language) Valid() bool {
	return l == English || l == Kannada
}

// Middleware wraps the transport of every request.
type Middleware func(req *http.Request, next RoundTripper) (*http.Response, error)

// RoundTripper represents the HTTP transport interface
type RoundTripper interface {
	RoundTrip(*http.Request) (*http.Response, error)
}

// RoundTripperFunc is a helper type for middleware
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Option represents a configuration option
type Option func(*Client)

// DebugConfig selects what the client logs when a Logger is set.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogFailures  bool
	LogCache     bool
	RequestIDGen func() string
}

// TranslateResponse is the body of a successful /api/translate call.
type TranslateResponse struct {
	Success   bool   `json:"success"`
	English   string `json:"english"`
	Kannada   string `json:"kannada"`
	Timestamp string `json:"timestamp,omitempty"`
}

// TranslationPair is one element of a batch translation.
type TranslationPair struct {
	English string `json:"english"`
	Kannada string `json:"kannada"`
}

// BatchResponse is the body of a successful /api/translate-batch call.
type BatchResponse struct {
	Success      bool              `json:"success"`
	Translations []TranslationPair `json:"translations"`
	Timestamp    string            `json:"timestamp,omitempty"`
}

// SpeakResponse is the body of a successful /api/speak call.
type SpeakResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Text     string   `json:"text"`
	Language Language `json:"language"`
}

// HealthResponse is the body of /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// EndpointInfo describes one route listed by /api/info.
type EndpointInfo struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
}

// InfoResponse is the body of /api/info.
type InfoResponse struct {
	Name        string                  `json:"name"`
	Version     string                  `json:"version"`
	Description string                  `json:"description"`
	Endpoints   map[string]EndpointInfo `json:"endpoints"`
}
