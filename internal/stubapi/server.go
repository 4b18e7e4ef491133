// Package stubapi serves a stand-in for the translation backend. Answers come
// from a fixture table, so it is suitable for tests and local development.
package stubapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	json "github.com/goccy/go-json"
)

const (
	ServiceName = "English to Kannada Translator API"
	APIVersion  = "1.0.0"
)

// Server answers the API routes from fixtures. It is safe for concurrent use.
type Server struct {
	mu       sync.RWMutex
	phrases  map[string]string
	latency  time.Duration
	now      func() time.Time
	spoken   []SpokenText
	requests int
}

// SpokenText is one accepted /api/speak call.
type SpokenText struct {
	Text     string
	Language string
}

// Option configures a Server.
type Option func(*Server)

// WithLatency delays every answer by d, or until the request is cancelled.
func WithLatency(d time.Duration) Option {
	return func(s *Server) {
		s.latency = d
	}
}

// WithClock overrides the time source used for response timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New builds a Server answering from fixtures.
func New(fixtures *Fixtures, opts ...Option) *Server {
	s := &Server{
		phrases: make(map[string]string),
		now:     time.Now,
	}
	if fixtures != nil {
		for en, kn := range fixtures.Phrases {
			s.phrases[normalize(en)] = kn
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router serving the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}))
	r.Use(s.countRequests)
	if s.latency > 0 {
		r.Use(s.delay)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/translate", s.handleTranslate)
		r.Post("/translate-batch", s.handleTranslateBatch)
		r.Post("/speak", s.handleSpeak)
		r.Get("/health", s.handleHealth)
		r.Get("/info", s.handleInfo)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// Spoken returns the texts accepted by /api/speak so far.
func (s *Server) Spoken() []SpokenText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SpokenText, len(s.spoken))
	copy(out, s.spoken)
	return out
}

// Requests returns how many API requests were received.
func (s *Server) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) delay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
		}
	})
}

func (s *Server) lookup(text string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	kn, ok := s.phrases[normalize(text)]
	return kn, ok
}

func (s *Server) timestamp() string {
	return s.now().Format("2006-01-02T15:04:05.000000")
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func decodeBody(r *http.Request, v any) bool {
	return json.NewDecoder(r.Body).Decode(v) == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
