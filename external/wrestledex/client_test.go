package wrestledex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestFetchRoster_MapsProfiles(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/promotions/WWE/roster" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"wd-1","ring_name":"The Rock","gender":"Male","real_name":"Dwayne Johnson","nickname":"The People's Champion","height":"6'5\"","weight":"260 lbs","debut_year":1996,"biography":"Electrifying."},
			{"id":"wd-2","ring_name":"","gender":"Male"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "test-token"})

	roster, err := client.FetchRoster(context.Background(), "WWE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected one profile after dropping the nameless one, got=%d", len(roster))
	}

	profile := roster[0]
	if profile.ExternalID != "wd-1" {
		t.Fatalf("expected external id wd-1, got=%s", profile.ExternalID)
	}
	if profile.Name != "The Rock" {
		t.Fatalf("expected name The Rock, got=%s", profile.Name)
	}
	if profile.DebutYear != 1996 {
		t.Fatalf("expected debut year 1996, got=%d", profile.DebutYear)
	}
}

func TestFetchRoster_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"wd-3","ring_name":"Becky Lynch","gender":"Female"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, MaxRetries: 2})

	roster, err := client.FetchRoster(context.Background(), "WWE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected one profile, got=%d", len(roster))
	}
	if calls.Load() != 2 {
		t.Fatalf("expected two requests, got=%d", calls.Load())
	}
}

func TestFetchRoster_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, MaxRetries: 3})

	if _, err := client.FetchRoster(context.Background(), "Unknown"); err == nil {
		t.Fatal("expected an error for status 404")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single request for a non retryable status, got=%d", calls.Load())
	}
}
