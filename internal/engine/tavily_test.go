package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func initTestConfig(t *testing.T, tavilyURL string) {
	t.Helper()
	Init(Config{
		TavilyURL:        tavilyURL,
		SearchMaxResults: 5,
		SearchTimeout:    5 * time.Second,
		HTTPClient:       &http.Client{Timeout: 5 * time.Second},
	})
}

func TestTavilySearch(t *testing.T) {
	var got tavilyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %s, want /search", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"title":"Jane Doe","content":"Founder of Acme.","url":"https://acme.com","score":0.91}]}`))
	}))
	defer srv.Close()
	initTestConfig(t, srv.URL)

	results, err := tavilySearcher{}.Search(context.Background(), "Jane Doe Founder Acme", "tvly-x")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Title != "Jane Doe" || results[0].Content != "Founder of Acme." {
		t.Errorf("unexpected result: %+v", results[0])
	}

	if got.APIKey != "tvly-x" {
		t.Errorf("api_key = %q", got.APIKey)
	}
	if got.Query != "Jane Doe Founder Acme" {
		t.Errorf("query = %q", got.Query)
	}
	if got.SearchDepth != "basic" {
		t.Errorf("search_depth = %q", got.SearchDepth)
	}
	if got.MaxResults != 5 {
		t.Errorf("max_results = %d", got.MaxResults)
	}
	if got.IncludeAnswer || got.IncludeRawContent {
		t.Errorf("include flags should be off: %+v", got)
	}
}

func TestTavilySearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()
	initTestConfig(t, srv.URL)

	_, err := tavilySearcher{}.Search(context.Background(), "anything", "bad-key")
	if err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestTavilySearchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()
	initTestConfig(t, srv.URL)

	_, err := tavilySearcher{}.Search(context.Background(), "anything", "tvly-x")
	if err == nil {
		t.Fatal("expected decode error")
	}
}
