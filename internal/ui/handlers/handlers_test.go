package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/notify"
	"github.com/homearc/homearc/internal/poll"
)

// newHandlerService wires a HandlerService against a stub appliance backend.
func newHandlerService(t *testing.T, backend http.HandlerFunc) (*HandlerService, *notify.Hub) {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	hub := notify.NewHub()
	client, err := api.NewClient(server.URL, hub)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	return &HandlerService{
		ApiClient:   client,
		Store:       poll.NewStore(),
		Hub:         hub,
		Environment: "test",
	}, hub
}

func TestHandleNotifications_WatermarkFilter(t *testing.T) {
	t.Parallel()

	h, hub := newHandlerService(t, func(w http.ResponseWriter, r *http.Request) {})

	base := time.Now().UTC().Add(-time.Minute)
	for i := range 3 {
		n := notify.New(notify.LevelInfo, fmt.Sprintf("toast %d", i), "")
		n.At = base.Add(time.Duration(i) * time.Second)
		hub.Notify(n)
	}

	after := base.Add(time.Second).Format(time.RFC3339Nano)
	req := httptest.NewRequest(http.MethodGet, "/ui-api/notifications?after="+after, nil)
	rec := httptest.NewRecorder()
	h.HandleNotifications(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Notifications []notify.Notification `json:"notifications"`
		Now           time.Time             `json:"now"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(body.Notifications))
	}
	if body.Notifications[0].Title != "toast 2" {
		t.Fatalf("title = %q, want toast 2", body.Notifications[0].Title)
	}
	if body.Now.IsZero() {
		t.Fatalf("now not set")
	}
}

func TestHandleNotifications_RejectsBadTimestamp(t *testing.T) {
	t.Parallel()

	h, _ := newHandlerService(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/ui-api/notifications?after=yesterday", nil)
	rec := httptest.NewRecorder()
	h.HandleNotifications(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSearchFiles_ForwardsEnvelope(t *testing.T) {
	t.Parallel()

	h, _ := newHandlerService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"file_groups": [{"id": 1, "primary_path": "one.mp4"}], "totals": {"file_groups": 9}}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/ui-api/search/files", strings.NewReader(`{"search_str": "one"}`))
	rec := httptest.NewRecorder()
	h.HandleSearchFiles(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		FileGroups []api.FileGroup `json:"file_groups"`
		Total      int             `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.FileGroups) != 1 || body.Total != 9 {
		t.Fatalf("body = %+v", body)
	}
}

func TestHandleSearchFiles_BadBodyIs400(t *testing.T) {
	t.Parallel()

	h, _ := newHandlerService(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/ui-api/search/files", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleSearchFiles(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTransportFailureAnswers502(t *testing.T) {
	t.Parallel()

	h, _ := newHandlerService(t, func(w http.ResponseWriter, r *http.Request) {})

	// point the client at a closed port
	badClient, err := api.NewClient("127.0.0.1:1", notify.Discard{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	h.ApiClient = badClient

	req := httptest.NewRequest(http.MethodGet, "/ui-api/settings", nil)
	rec := httptest.NewRecorder()
	h.HandleGetSettings(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message == "" {
		t.Fatalf("error response has no message")
	}
}

func TestHandleSnapshot_ReturnsStoreState(t *testing.T) {
	t.Parallel()

	h, _ := newHandlerService(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/ui-api/snapshot", nil)
	rec := httptest.NewRecorder()
	h.HandleSnapshot(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var snap poll.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if snap.Events == nil {
		t.Fatalf("snapshot events are nil, want empty slice")
	}
}
