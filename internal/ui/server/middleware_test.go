package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestSizeLimit_RejectsOversizedContentLength(t *testing.T) {
	t.Parallel()

	handler := RequestSizeLimit(100)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/ui-api/tags", strings.NewReader(strings.Repeat("x", 200)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if rec.Header().Get("X-Max-Request-Size") != "100" {
		t.Fatalf("X-Max-Request-Size = %q", rec.Header().Get("X-Max-Request-Size"))
	}
}

func TestRequestSizeLimit_AllowsSmallBody(t *testing.T) {
	t.Parallel()

	handler := RequestSizeLimit(100)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/ui-api/tags", strings.NewReader(`{"name":"ok"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRateLimit_RejectsWhenBurstExhausted(t *testing.T) {
	t.Parallel()

	handler := RateLimit(1, 2)(okHandler())

	statuses := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/ui-api/snapshot", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("burst requests rejected: %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", statuses[2])
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders("prod")(okHandler()).ServeHTTP(rec, req)

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("X-Content-Type-Options missing")
	}
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Fatalf("HSTS header missing in prod")
	}

	rec = httptest.NewRecorder()
	SecurityHeaders("dev")(okHandler()).ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS header set outside prod")
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://ui.homearc.local"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/ui-api/snapshot", nil)
	req.Header.Set("Origin", "https://ui.homearc.local")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://ui.homearc.local" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}

	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected Access-Control-Allow-Origin %q for unknown origin", got)
	}
}
