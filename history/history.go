// Package history keeps the most recent translations, newest first, persisted
// as a JSON array under a single key of a Store.
package history

import (
	"errors"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// DefaultKey is the storage key the history array is kept under.
	DefaultKey = "translationHistory"
	// DefaultCapacity is how many entries are retained.
	DefaultCapacity = 10

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ErrOutOfRange is returned by At for an index outside the history.
var ErrOutOfRange = errors.New("history: index out of range")

// Entry is one remembered translation.
type Entry struct {
	English   string
	Kannada   string
	Timestamp time.Time
}

type entryJSON struct {
	English   string `json:"english"`
	Kannada   string `json:"kannada"`
	Timestamp string `json:"timestamp"`
}

// MarshalJSON writes the timestamp as UTC ISO 8601 with milliseconds.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		English:   e.English,
		Kannada:   e.Kannada,
		Timestamp: e.Timestamp.UTC().Format(timestampLayout),
	})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts, err := time.Parse(time.RFC3339Nano, raw.Timestamp)
	if err != nil {
		return fmt.Errorf("history: bad timestamp %q: %w", raw.Timestamp, err)
	}
	e.English = raw.English
	e.Kannada = raw.Kannada
	e.Timestamp = ts
	return nil
}

// History is a capped list of entries backed by a Store. It is safe for
// concurrent use.
type History struct {
	mu       sync.Mutex
	store    Store
	key      string
	capacity int
	now      func() time.Time
	entries  []Entry
}

// Option configures a History.
type Option func(*History)

// WithCapacity sets how many entries are kept. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// WithKey sets the storage key.
func WithKey(key string) Option {
	return func(h *History) {
		h.key = key
	}
}

// WithClock sets the time source for new entries.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		h.now = now
	}
}

// New creates an empty History on store. Call Load to read persisted entries.
func New(store Store, opts ...Option) *History {
	h := &History{
		store:    store,
		key:      DefaultKey,
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Load replaces the in-memory entries with the persisted ones. On error the
// history is left empty.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil

	data, found, err := h.store.Get(h.key)
	if err != nil {
		return fmt.Errorf("history: load: %w", err)
	}
	if !found || len(data) == 0 {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("history: decode: %w", err)
	}
	if len(entries) > h.capacity {
		entries = entries[:h.capacity]
	}
	h.entries = entries
	return nil
}

// Add records a translation as the newest entry, dropping the oldest past
// capacity, and persists the list.
func (h *History) Add(english, kannada string) (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := Entry{English: english, Kannada: kannada, Timestamp: h.now()}

	entries := make([]Entry, 0, len(h.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, h.entries...)
	if len(entries) > h.capacity {
		entries = entries[:h.capacity]
	}
	h.entries = entries

	return entry, h.save()
}

// Entries returns a copy, newest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// At returns the entry at index i, 0 being the newest.
func (h *History) At(i int) (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i < 0 || i >= len(h.entries) {
		return Entry{}, ErrOutOfRange
	}
	return h.entries[i], nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Capacity returns the maximum number of entries kept.
func (h *History) Capacity() int {
	return h.capacity
}

// Clear removes every entry and the persisted key.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	if err := h.store.Delete(h.key); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

func (h *History) save() error {
	entries := h.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	if err := h.store.Set(h.key, data); err != nil {
		return fmt.Errorf("history: save: %w", err)
	}
	return nil
}
