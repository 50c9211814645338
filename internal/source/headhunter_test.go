package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vacancy-finder-go/pkg/httpclient"
)

func newTestServer(t *testing.T, pages map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("User-Agent = %q, want %q", got, userAgent)
		}
		page := r.URL.Query().Get("page")
		body, ok := pages[page]
		if !ok {
			body = map[string]any{"items": []any{}}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHeadHunterFetchPaginatesAndMapsItems(t *testing.T) {
	server := newTestServer(t, map[string]any{
		"0": map[string]any{"items": []any{
			map[string]any{
				"id":            "101",
				"name":          "Go Developer",
				"alternate_url": "https://hh.example/vacancy/101",
				"salary":        map[string]any{"from": 150000, "to": 200000, "currency": "RUR"},
				"snippet": map[string]any{
					"requirement":    "Knows <highlighttext>Go</highlighttext> well",
					"responsibility": "Builds services",
				},
			},
			map[string]any{
				"id":            "102",
				"name":          "Backend Engineer",
				"alternate_url": "https://hh.example/vacancy/102",
				"salary":        map[string]any{"to": 90000},
			},
		}},
		"1": map[string]any{"items": []any{
			map[string]any{
				"id":            "103",
				"name":          "Intern",
				"alternate_url": "https://hh.example/vacancy/103",
			},
		}},
	})

	hh := NewHeadHunter(httpclient.NewHttpClient(5*time.Second), server.URL)
	raw, err := hh.Fetch(context.Background(), "golang")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("got %d raw items, want 3", len(raw))
	}

	first := raw[0]
	if first["name"] != "Go Developer" || first["link"] != "https://hh.example/vacancy/101" || first["id"] != "101" {
		t.Fatalf("first item mapped wrong: %+v", first)
	}
	if first["salary"] != 150000.0 {
		t.Fatalf("salary should resolve to the lower bound, got %v", first["salary"])
	}
	if first["description"] != "Knows Go well Builds services" {
		t.Fatalf("description should be stripped of markup, got %q", first["description"])
	}

	if raw[1]["salary"] != 90000.0 {
		t.Fatalf("salary should fall back to the upper bound, got %v", raw[1]["salary"])
	}
	if _, ok := raw[1]["description"]; ok {
		t.Fatal("missing snippet must not produce a description key")
	}
	if _, ok := raw[2]["salary"]; ok {
		t.Fatal("missing salary must not produce a salary key")
	}
}

func TestHeadHunterFetchStopsOnEmptyPage(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))
	t.Cleanup(server.Close)

	hh := NewHeadHunter(httpclient.NewHttpClient(5*time.Second), server.URL)
	raw, err := hh.Fetch(context.Background(), "golang")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(raw) != 0 {
		t.Fatalf("got %d items, want 0", len(raw))
	}
	if requests != 1 {
		t.Fatalf("pagination should stop after the first empty page, got %d requests", requests)
	}
}

func TestHeadHunterFetchSurfacesHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	hh := NewHeadHunter(httpclient.NewHttpClient(5*time.Second), server.URL)
	if _, err := hh.Fetch(context.Background(), "golang"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}
