package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/homearc/homearc/internal/notify"
)

// recorder captures notifications for assertions.
type recorder struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (r *recorder) Notify(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recorder) all() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification{}, r.got...)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *recorder) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	rec := &recorder{}
	client, err := NewClient(server.URL, rec, opts...)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client, rec
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("localhost:8081")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != "localhost:8081" {
		t.Fatalf("host = %q, want localhost:8081", u.Host)
	}

	u, err = parseBaseURL("http://example.com:1234/base/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/base" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("  "); err == nil {
		t.Fatalf("parseBaseURL accepted empty input, want error")
	}
}

func TestExecute_TimeoutRejectsSlowCall(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	}, WithTimeout(50*time.Millisecond))
	t.Cleanup(func() { close(release) })

	start := time.Now()
	_, err := client.get(context.Background(), "/api/echo", nil)
	if err == nil {
		t.Fatalf("get returned nil error, want timeout")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("error = %v, want timed out", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("call took %v, want prompt timeout", elapsed)
	}
}

func TestExecute_FastCallUnaffectedByTimeout(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, WithTimeout(100*time.Millisecond))

	oc, err := client.get(context.Background(), "/api/echo", nil)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if !oc.OK() {
		t.Fatalf("outcome not OK: status %d", oc.Status)
	}

	// the timeout elapsing after completion must not surface anywhere
	time.Sleep(150 * time.Millisecond)
}

func TestExecute_SuccessPassthrough(t *testing.T) {
	t.Parallel()

	for _, status := range []int{200, 201, 204, 299} {
		client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		oc, err := client.get(context.Background(), "/api/echo", nil)
		if err != nil {
			t.Fatalf("status %d: get returned error: %v", status, err)
		}
		if !oc.OK() {
			t.Fatalf("status %d: outcome not OK", status)
		}
		if oc.AppErr != nil {
			t.Fatalf("status %d: unexpected AppErr %v", status, oc.AppErr)
		}
		if len(rec.all()) != 0 {
			t.Fatalf("status %d: unexpected notifications %v", status, rec.all())
		}
	}
}

func TestExecute_WriteProtectInterception(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code": 17, "message": "WROL Mode is enabled"}`))
	})

	// two different operations - each call raises exactly one warning
	if err := client.UpdateSettings(context.Background(), SettingsUpdate{}); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}
	if err := client.DeleteTag(context.Background(), 3); err != nil {
		t.Fatalf("DeleteTag returned error: %v", err)
	}

	got := rec.all()
	if len(got) != 2 {
		t.Fatalf("notifications = %d, want 2 (one per call)", len(got))
	}
	for _, n := range got {
		if n.Level != notify.LevelWarning {
			t.Fatalf("notification level = %q, want warning", n.Level)
		}
		if !strings.Contains(n.Title, "Write-protect") {
			t.Fatalf("notification title = %q, want write-protect warning", n.Title)
		}
	}
}

func TestExecute_DefensiveErrorBodyDecoding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"non-json body", "<html>internal error</html>"},
		{"partial json", `{"message": "broke"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(tc.body))
			})

			oc, err := client.get(context.Background(), "/api/echo", nil)
			if err != nil {
				t.Fatalf("get returned error: %v", err)
			}
			if oc.AppErr == nil {
				t.Fatalf("AppErr is nil for status 500")
			}
			if oc.AppErr.Status != http.StatusInternalServerError {
				t.Fatalf("AppErr.Status = %d, want 500", oc.AppErr.Status)
			}
			if oc.AppErr.Code != 0 {
				t.Fatalf("AppErr.Code = %d, want 0", oc.AppErr.Code)
			}
		})
	}
}

func TestExecute_ConnectionRefusedIsTransportError(t *testing.T) {
	rec := &recorder{}
	client, err := NewClient("127.0.0.1:1", rec)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = client.get(context.Background(), "/api/echo", nil)
	if err == nil {
		t.Fatalf("get returned nil error, want transport failure")
	}
	if len(rec.all()) != 0 {
		t.Fatalf("transport failures must not notify, got %v", rec.all())
	}
}
