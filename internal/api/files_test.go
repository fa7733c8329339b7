package api

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/homearc/homearc/internal/notify"
)

func TestSearchFiles_ParsesPaginatedEnvelope(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/files/search" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"file_groups": [
				{"id": 1, "primary_path": "videos/one.mp4"},
				{"id": 2, "primary_path": "archive/two.html"}
			],
			"totals": {"file_groups": 42}
		}`))
	})

	groups, total, err := client.SearchFiles(context.Background(), FileSearchParams{SearchStr: "test"})
	if err != nil {
		t.Fatalf("SearchFiles returned error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].PrimaryPath != "videos/one.mp4" {
		t.Fatalf("groups[0].PrimaryPath = %q", groups[0].PrimaryPath)
	}
	if total != 42 {
		t.Fatalf("total = %d, want 42", total)
	}
}

func TestSearchFiles_DegradesToEmptyPageOnAppError(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "bad search", "code": 10}`))
	})

	groups, total, err := client.SearchFiles(context.Background(), FileSearchParams{})
	if err != nil {
		t.Fatalf("SearchFiles returned error: %v", err)
	}
	if groups == nil || len(groups) != 0 {
		t.Fatalf("groups = %#v, want empty non-nil slice", groups)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}

	got := rec.all()
	if len(got) != 1 || got[0].Level != notify.LevelError {
		t.Fatalf("notifications = %v, want one error toast", got)
	}
}

func TestSearchBody_AppliesDefaultsAndDropsEmptyFields(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"file_groups": [], "totals": {"file_groups": 0}}`))
	})

	_, _, err := client.SearchFiles(context.Background(), FileSearchParams{Offset: -5})
	if err != nil {
		t.Fatalf("SearchFiles returned error: %v", err)
	}

	if captured["limit"] != float64(24) {
		t.Fatalf("limit = %v, want default 24", captured["limit"])
	}
	if captured["offset"] != float64(0) {
		t.Fatalf("offset = %v, want clamped to 0", captured["offset"])
	}
	for _, key := range []string{"search_str", "mimetypes", "tag_names"} {
		if _, present := captured[key]; present {
			t.Fatalf("empty field %q was sent", key)
		}
	}
}

func TestListDirectory_DefaultsNilSlices(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	listing, err := client.ListDirectory(context.Background(), "videos")
	if err != nil {
		t.Fatalf("ListDirectory returned error: %v", err)
	}
	if listing.Files == nil || listing.Directories == nil {
		t.Fatalf("listing has nil slices: %#v", listing)
	}
}

func TestUploadFile_SendsMultipartForm(t *testing.T) {
	t.Parallel()

	type upload struct {
		destination string
		filename    string
		contents    string
	}
	captured := make(chan upload, 1)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			t.Errorf("parse content type: %v", err)
			return
		}
		reader := multipart.NewReader(r.Body, params["boundary"])

		var got upload
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("read part: %v", err)
				return
			}
			data, _ := io.ReadAll(part)
			switch part.FormName() {
			case "destination":
				got.destination = string(data)
			case "file":
				got.filename = part.FileName()
				got.contents = string(data)
			}
		}
		captured <- got
		w.WriteHeader(http.StatusCreated)
	})

	contents := strings.NewReader("hello appliance")
	if err := client.UploadFile(context.Background(), "videos/uploads", "clip.mp4", contents); err != nil {
		t.Fatalf("UploadFile returned error: %v", err)
	}

	got := <-captured
	if got.destination != "videos/uploads" {
		t.Fatalf("destination = %q", got.destination)
	}
	if got.filename != "clip.mp4" {
		t.Fatalf("filename = %q", got.filename)
	}
	if got.contents != "hello appliance" {
		t.Fatalf("contents = %q", got.contents)
	}
}
