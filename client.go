package anuvada

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// DefaultBaseURL is the origin the translator page is served from.
	DefaultBaseURL = "http://localhost:5000"
	// DefaultTimeout bounds every request that does not set its own timeout.
	DefaultTimeout = 15000 * time.Millisecond
	// RequestIDHeader carries the per-call request ID.
	RequestIDHeader = "X-Request-ID"

	maxBodySize = 10 * 1024 * 1024
)

// Client talks to the translation API. Every call returns an Outcome; no
// error or panic escapes Request. It is safe for concurrent use.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	timeout         time.Duration
	headers         map[string]string
	middleware      []Middleware
	cache           Cache
	cacheTTL        time.Duration
	metrics         *MetricsCollector
	debug           *DebugConfig
	logger          Logger
	validationError error

	notifications sync.WaitGroup
}

// New constructs a Client bound to baseURL. An empty baseURL uses
// DefaultBaseURL. Validation problems are recorded; see IsValid.
func New(baseURL string, options ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// The per-call timer owns the deadline, so the transport has none.
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		headers: map[string]string{
			"Content-Type": "application/json",
		},
		cacheTTL: 5 * time.Minute,
		debug:    DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}
	if client.debug == nil {
		client.debug = &DebugConfig{}
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// BaseURL returns the address every endpoint path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the default per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Request performs a single call to endpointPath and normalises the result.
// The call is cancelled when cfg.Timeout (or the client default) elapses.
func (c *Client) Request(ctx context.Context, endpointPath string, cfg RequestConfig) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Method == "" {
		cfg.Method = MethodGet
	}

	start := time.Now()
	method := string(cfg.Method)
	target := c.baseURL + endpointPath
	requestID := c.newRequestID()

	if c.logEnabled(c.debug.LogRequests) {
		c.logger.Debug("Starting request", "requestID", requestID, "method", method, "url", target)
	}

	c.metrics.RecordRequestStart(method, endpointPath)
	defer c.metrics.RecordRequestEnd(method, endpointPath)

	cacheKey := ""
	if c.shouldCache(cfg.Method) {
		cacheKey = cacheKeyFor(method, target)
		if outcome, ok := c.cachedOutcome(cacheKey); ok {
			c.metrics.RecordCacheHit(method, endpointPath)
			c.metrics.RecordRequest(method, endpointPath, outcome, time.Since(start))
			if c.logEnabled(c.debug.LogCache) {
				c.logger.Debug("Cache hit", "requestID", requestID, "cacheKey", cacheKey)
			}
			return outcome
		}
		c.metrics.RecordCacheMiss(method, endpointPath)
	}

	timeout := c.timeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	callCtx, cancel := context.WithTimeoutCause(ctx, timeout, errRequestTimeout)
	defer cancel()

	outcome, raw := c.execute(callCtx, target, requestID, cfg)
	duration := time.Since(start)

	if f := outcome.Failure(); f != nil {
		f.RequestID = requestID
		f.Method = method
		f.URL = target
		f.Endpoint = endpointPath
		f.Timestamp = time.Now()
		f.Duration = duration

		c.metrics.RecordFailure(f.Kind, method, endpointPath)
		if c.logEnabled(c.debug.LogFailures) {
			c.logger.Warn("Request failed", "requestID", requestID, "kind", f.Kind.String(),
				"status", f.HTTPStatus, "message", f.Message, "duration", duration)
		}
	} else if cacheKey != "" {
		c.cache.Set(cacheKey, &CacheEntry{Body: raw}, c.cacheTTL)
		c.metrics.RecordCacheSize("default", c.cache.Len())
		if c.logEnabled(c.debug.LogCache) {
			c.logger.Debug("Response cached", "requestID", requestID, "cacheKey", cacheKey, "ttl", c.cacheTTL)
		}
	}

	c.metrics.RecordRequest(method, endpointPath, outcome, duration)

	if c.logEnabled(c.debug.LogRequests) {
		c.logger.Debug("Request finished", "requestID", requestID, "success", outcome.Success(), "duration", duration)
	}

	return outcome
}

func (c *Client) execute(ctx context.Context, target, requestID string, cfg RequestConfig) (Outcome, []byte) {
	var body io.Reader
	if cfg.Body != nil {
		body = bytes.NewReader(cfg.Body)
	}

	req, err := http.NewRequestWithContext(ctx, string(cfg.Method), target, body)
	if err != nil {
		return failedWith(&Failure{Kind: KindNetworkError, Message: err.Error(), Cause: err}), nil
	}

	for name, value := range c.headers {
		req.Header.Set(name, value)
	}
	for name, value := range cfg.Headers {
		req.Header.Set(name, value)
	}
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := c.executeMiddleware(req)
	if err != nil {
		return failedWith(transportFailure(ctx, err)), nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return failedWith(transportFailure(ctx, err)), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failedWith(httpFailure(resp.StatusCode, raw)), nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return NewSuccess(nil, raw), raw
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return failedWith(&Failure{
			Kind:    KindNetworkError,
			Message: fmt.Sprintf("invalid JSON response: %v", err),
			Cause:   err,
		}), nil
	}

	return NewSuccess(payload, raw), raw
}

// transportFailure classifies err by whether our own timer cancelled ctx.
func transportFailure(ctx context.Context, err error) *Failure {
	if errors.Is(context.Cause(ctx), errRequestTimeout) {
		return &Failure{Kind: KindTimeout, Message: timeoutMessage, Cause: err}
	}
	return &Failure{Kind: KindNetworkError, Message: err.Error(), Cause: err}
}

func httpFailure(status int, raw []byte) *Failure {
	message := fmt.Sprintf("HTTP %d", status)

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err == nil {
		if msg, ok := body["error"].(string); ok && msg != "" {
			message = msg
		}
	}

	return &Failure{Kind: KindHTTPError, Message: message, HTTPStatus: status}
}

func (c *Client) executeMiddleware(req *http.Request) (*http.Response, error) {
	if len(c.middleware) == 0 {
		return c.httpClient.Do(req)
	}

	current := RoundTripperFunc(c.httpClient.Do)

	for i := len(c.middleware) - 1; i >= 0; i-- {
		middleware := c.middleware[i]
		next := current
		current = RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return middleware(r, next)
		})
	}

	return current.RoundTrip(req)
}

func (c *Client) newRequestID() string {
	if c.debug == nil || c.debug.RequestIDGen == nil {
		return ""
	}
	return c.debug.RequestIDGen()
}

func (c *Client) logEnabled(flag bool) bool {
	return c.debug != nil && c.debug.Enabled && flag && c.logger != nil
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}
