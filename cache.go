package anuvada

import (
	"hash/fnv"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// CacheEntry is a cached successful response body.
type CacheEntry struct {
	Body      []byte
	ExpiresAt time.Time
}

// Cache stores successful GET responses.
type Cache interface {
	Get(key string) (*CacheEntry, bool)
	Set(key string, entry *CacheEntry, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

type InMemoryCache struct {
	shards    []*cacheShard
	numShards int
}

type cacheShard struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
}

func NewInMemoryCache() *InMemoryCache {
	numShards := 16
	shards := make([]*cacheShard, numShards)
	for i := range shards {
		shards[i] = &cacheShard{
			store: make(map[string]*CacheEntry),
		}
	}
	return &InMemoryCache{
		shards:    shards,
		numShards: numShards,
	}
}

func (c *InMemoryCache) getShard(key string) *cacheShard {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	return c.shards[hash.Sum32()%uint32(c.numShards)]
}

func (c *InMemoryCache) Get(key string) (*CacheEntry, bool) {
	shard := c.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry, exists := shard.store[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		delete(shard.store, key)
		return nil, false
	}

	return entry, true
}

func (c *InMemoryCache) Set(key string, entry *CacheEntry, ttl time.Duration) {
	shard := c.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry.ExpiresAt = time.Now().Add(ttl)
	shard.store[key] = entry
}

func (c *InMemoryCache) Delete(key string) {
	shard := c.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	delete(shard.store, key)
}

func (c *InMemoryCache) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.store = make(map[string]*CacheEntry)
		shard.mu.Unlock()
	}
}

// Len counts entries, expired ones included until they are next read.
func (c *InMemoryCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.RLock()
		total += len(shard.store)
		shard.mu.RUnlock()
	}
	return total
}

func cacheKeyFor(method, target string) string {
	var buf []byte
	buf = append(buf, method...)
	buf = append(buf, ':')
	buf = append(buf, target...)
	return string(buf)
}

// shouldCache is true only for GET; POST calls always reach the server.
func (c *Client) shouldCache(method Method) bool {
	return c.cache != nil && method == MethodGet
}

// cachedOutcome decodes a fresh payload so callers never share maps.
func (c *Client) cachedOutcome(key string) (Outcome, bool) {
	entry, found := c.cache.Get(key)
	if !found {
		return Outcome{}, false
	}

	if len(entry.Body) == 0 {
		return NewSuccess(nil, entry.Body), true
	}

	var payload any
	if err := json.Unmarshal(entry.Body, &payload); err != nil {
		c.cache.Delete(key)
		return Outcome{}, false
	}
	return NewSuccess(payload, entry.Body), true
}
