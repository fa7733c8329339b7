package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestValidRegex_BothStatusesAreOrdinary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{"valid regex", http.StatusOK, `{"valid": true, "regex": "a+"}`, true},
		{"invalid regex", http.StatusBadRequest, `{"valid": false, "regex": "a("}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Regex string `json:"regex"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Regex == "" {
					t.Errorf("request body missing regex: %v", err)
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			valid, err := client.ValidRegex(context.Background(), "whatever")
			if err != nil {
				t.Fatalf("ValidRegex returned error: %v", err)
			}
			if valid != tc.want {
				t.Fatalf("valid = %t, want %t", valid, tc.want)
			}
			// a 400 here means "regex does not compile", not a failure
			if len(rec.all()) != 0 {
				t.Fatalf("unexpected notifications %v", rec.all())
			}
		})
	}
}

func TestValidRegex_UnexpectedStatusNotifies(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "broke"}`))
	})

	valid, err := client.ValidRegex(context.Background(), "a+")
	if err != nil {
		t.Fatalf("ValidRegex returned error: %v", err)
	}
	if valid {
		t.Fatalf("valid = true after server error")
	}
	if len(rec.all()) != 1 {
		t.Fatalf("notifications = %v, want one toast", rec.all())
	}
}

func TestEcho_SilentOnSuccessNotifiesOnFailure(t *testing.T) {
	t.Parallel()

	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/echo" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := client.Echo(context.Background()); err != nil {
		t.Fatalf("Echo returned error: %v", err)
	}
	if len(rec.all()) != 0 {
		t.Fatalf("unexpected notifications %v", rec.all())
	}

	client, rec = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if err := client.Echo(context.Background()); err != nil {
		t.Fatalf("Echo returned error: %v", err)
	}
	if len(rec.all()) != 1 {
		t.Fatalf("notifications = %v, want one toast", rec.all())
	}
}
