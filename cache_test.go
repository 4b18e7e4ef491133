package anuvada

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestInMemoryCache(t *testing.T) {
	cache := NewInMemoryCache()

	cache.Set("k", &CacheEntry{Body: []byte(`{}`)}, time.Minute)
	entry, ok := cache.Get("k")
	if !ok || string(entry.Body) != `{}` {
		t.Fatalf("Expected cached entry, got %v %v", entry, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("Expected Len()=1, got %d", cache.Len())
	}

	cache.Delete("k")
	if _, ok := cache.Get("k"); ok {
		t.Error("Expected entry to be deleted")
	}

	cache.Set("a", &CacheEntry{}, time.Minute)
	cache.Set("b", &CacheEntry{}, time.Minute)
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d", cache.Len())
	}
}

func TestInMemoryCacheExpiry(t *testing.T) {
	cache := NewInMemoryCache()
	cache.Set("k", &CacheEntry{Body: []byte(`{}`)}, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, ok := cache.Get("k"); ok {
		t.Error("Expected expired entry to be missing")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected expired entry to be evicted, got Len()=%d", cache.Len())
	}
}

func TestInMemoryCacheConcurrent(t *testing.T) {
	cache := NewInMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			cache.Set(key, &CacheEntry{}, time.Minute)
			cache.Get(key)
		}(i)
	}
	wg.Wait()
	if cache.Len() != 20 {
		t.Errorf("Expected 20 entries, got %d", cache.Len())
	}
}

func TestClientCachesGetOnly(t *testing.T) {
	var gets, posts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&gets, 1)
			writeBody(t, w, http.StatusOK, `{"status":"healthy"}`)
		default:
			atomic.AddInt32(&posts, 1)
			writeBody(t, w, http.StatusOK, `{"success":true,"english":"Hello","kannada":"ಹಲೋ"}`)
		}
	}))
	defer server.Close()

	client := New(server.URL, WithCache(time.Minute))

	for i := 0; i < 3; i++ {
		if outcome := client.HealthCheck(context.Background()); !outcome.Success() {
			t.Fatalf(expectedSuccessMsg, outcome.Err())
		}
		if outcome := client.Translate(context.Background(), "Hello"); !outcome.Success() {
			t.Fatalf(expectedSuccessMsg, outcome.Err())
		}
	}

	if n := atomic.LoadInt32(&gets); n != 1 {
		t.Errorf("Expected 1 GET to reach the server, got %d", n)
	}
	if n := atomic.LoadInt32(&posts); n != 3 {
		t.Errorf("Expected every POST to reach the server, got %d", n)
	}
}

func TestCachedPayloadIsNotShared(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusOK, `{"status":"healthy"}`)
	}))
	defer server.Close()

	client := New(server.URL, WithCache(time.Minute))
	first := client.HealthCheck(context.Background())
	first.Payload().(map[string]any)["status"] = "tampered"

	second := client.HealthCheck(context.Background())
	if v, _ := second.Field("status"); v != "healthy" {
		t.Errorf("Expected fresh cached payload, got %v", v)
	}
}

func TestFailuresAreNotCached(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			writeBody(t, w, http.StatusServiceUnavailable, `{"error":"warming up"}`)
			return
		}
		writeBody(t, w, http.StatusOK, `{"status":"healthy"}`)
	}))
	defer server.Close()

	client := New(server.URL, WithCache(time.Minute))
	if outcome := client.HealthCheck(context.Background()); !outcome.Failed() {
		t.Fatal("Expected first call to fail")
	}
	if outcome := client.HealthCheck(context.Background()); !outcome.Success() {
		t.Fatalf(expectedSuccessMsg, outcome.Err())
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("Expected 2 calls, got %d", n)
	}
}
