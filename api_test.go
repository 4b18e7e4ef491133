package anuvada

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ambiyansyah-risyal/anuvada/internal/stubapi"
)

func newStubClient(t *testing.T, opts ...Option) (*Client, *stubapi.Server) {
	t.Helper()
	stub := stubapi.New(stubapi.DefaultFixtures())
	server := httptest.NewServer(stub.Handler())
	t.Cleanup(server.Close)
	return New(server.URL, opts...), stub
}

func TestTranslateAgainstStub(t *testing.T) {
	client, stub := newStubClient(t)

	var resp TranslateResponse
	if err := client.Translate(context.Background(), "Thank you").Decode(&resp); err != nil {
		t.Fatalf("Translate() failed: %v", err)
	}
	if resp.Kannada != "ಧನ್ಯವಾದಗಳು" {
		t.Errorf("Expected ಧನ್ಯವಾದಗಳು, got %q", resp.Kannada)
	}
	if stub.Requests() != 1 {
		t.Errorf(expectedOneRequestMsg, stub.Requests())
	}

	f := client.Translate(context.Background(), "   ").Failure()
	if f == nil || f.HTTPStatus != 400 || f.Message != "No text provided" {
		t.Errorf("Expected 400 No text provided, got %v", f)
	}
}

func TestTranslateBatchAgainstStub(t *testing.T) {
	client, _ := newStubClient(t)

	var resp BatchResponse
	if err := client.TranslateBatch(context.Background(), []string{"Hello", "Water", "zzz"}).Decode(&resp); err != nil {
		t.Fatalf("TranslateBatch() failed: %v", err)
	}
	if len(resp.Translations) != 3 {
		t.Fatalf("Expected 3 translations, got %d", len(resp.Translations))
	}
	if resp.Translations[1].Kannada != "ನೀರು" || resp.Translations[2].Kannada != "" {
		t.Errorf("Unexpected translations %+v", resp.Translations)
	}

	f := client.TranslateBatch(context.Background(), nil).Failure()
	if f == nil || f.Message != "No texts provided or invalid format" {
		t.Errorf("Expected empty batch to be rejected, got %v", f)
	}
}

func TestSpeakDefaultsToEnglish(t *testing.T) {
	client, stub := newStubClient(t)

	var resp SpeakResponse
	if err := client.Speak(context.Background(), "Hello", "").Decode(&resp); err != nil {
		t.Fatalf("Speak() failed: %v", err)
	}
	if resp.Language != English || resp.Message != "Text-to-speech initiated" {
		t.Errorf("Unexpected response %+v", resp)
	}
	if spoken := stub.Spoken(); len(spoken) != 1 || spoken[0].Language != "english" {
		t.Errorf("Unexpected spoken texts %+v", spoken)
	}
}

func TestHealthAndInfoAgainstStub(t *testing.T) {
	client, _ := newStubClient(t)

	var health HealthResponse
	if err := client.HealthCheck(context.Background()).Decode(&health); err != nil {
		t.Fatalf("HealthCheck() failed: %v", err)
	}
	if health.Status != "healthy" || health.Version != stubapi.APIVersion {
		t.Errorf("Unexpected health %+v", health)
	}

	var info InfoResponse
	if err := client.GetInfo(context.Background()).Decode(&info); err != nil {
		t.Fatalf("GetInfo() failed: %v", err)
	}
	if info.Endpoints["translate"].Path != PathTranslate {
		t.Errorf("Unexpected info endpoints %+v", info.Endpoints)
	}

	f := client.Request(context.Background(), "/api/nope", RequestConfig{}).Failure()
	if f == nil || f.HTTPStatus != 404 || f.Message != "Endpoint not found" {
		t.Errorf("Expected 404 Endpoint not found, got %v", f)
	}
}

func TestNotifySpoken(t *testing.T) {
	collector := NewMetricsCollectorWithRegistry(prometheus.NewRegistry())
	client, stub := newStubClient(t, WithMetricsCollector(collector))

	client.NotifySpoken("ಹಲೋ", Kannada)
	client.WaitNotifications()

	spoken := stub.Spoken()
	if len(spoken) != 1 || spoken[0].Text != "ಹಲೋ" || spoken[0].Language != "kannada" {
		t.Errorf("Unexpected spoken texts %+v", spoken)
	}
	if got := testutil.ToFloat64(collector.notificationsTotal.WithLabelValues("success")); got != 1 {
		t.Errorf("Expected 1 successful notification, got %v", got)
	}
}

func TestNotifySpokenReturnsImmediately(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	collector := NewMetricsCollectorWithRegistry(prometheus.NewRegistry())
	client := New(server.URL, WithMetricsCollector(collector))

	start := time.Now()
	client.NotifySpoken("Hello", English)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("NotifySpoken blocked for %v", elapsed)
	}

	close(release)
	client.WaitNotifications()

	if got := testutil.ToFloat64(collector.notificationsTotal.WithLabelValues("http_error")); got != 1 {
		t.Errorf("Expected the failed notification to be counted, got %v", got)
	}
}
