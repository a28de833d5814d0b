package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveAndScrape(t *testing.T) {
	m := NewHTTPMetrics()
	m.Observe(http.MethodGet, "/product/", http.StatusOK, 30*time.Millisecond)
	m.Observe(http.MethodGet, "/product/", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodPost, "/cart/", http.StatusCreated, 5*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	if !strings.Contains(body, `http_requests_total{method="GET",route="/product/",status="200"} 2`) {
		t.Fatalf("expected counter in scrape output, got:\n%s", body)
	}
	if !strings.Contains(body, `http_requests_total{method="POST",route="/cart/",status="201"} 1`) {
		t.Fatalf("expected cart counter in scrape output, got:\n%s", body)
	}
	if !strings.Contains(body, "http_request_duration_seconds_bucket") {
		t.Fatal("expected histogram buckets in scrape output")
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil metrics handler, got %d", w.Code)
	}
}
