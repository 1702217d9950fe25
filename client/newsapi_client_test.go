package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sentinance/customerrors"
	"sentinance/model"
)

func TestNewsApiFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","code":"apiKeyMissing","message":"missing"}`))
			return
		}
		if r.URL.Query().Get("q") != "TSLA" || r.URL.Query().Get("pageSize") != "3" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","totalResults":3,"articles":[
			{"source":{"name":"Reuters"},"title":"Tesla beats estimates","description":"Deliveries rose.","publishedAt":"2024-05-06T12:00:00Z"},
			{"source":{"name":"X"},"title":"[Removed]","description":"[Removed]","publishedAt":"2024-05-06T11:00:00Z"},
			{"source":{"name":"AP"},"title":"Tesla recalls cars","description":"","publishedAt":"2024-05-06T10:00:00Z"}]}`))
	}))
	defer srv.Close()

	items, err := NewNewsApiClient(srv.URL, "key").Fetch(context.Background(), "TSLA", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected removed article to be skipped, got %d items", len(items))
	}
	if items[0].RawText != "Tesla beats estimates\nDeliveries rose." {
		t.Errorf("unexpected text %q", items[0].RawText)
	}
	if items[1].RawText != "Tesla recalls cars" || items[1].Source != model.SourceNews {
		t.Errorf("unexpected second item %+v", items[1])
	}
}

func TestNewsApiErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"status":"error","code":"rateLimited","message":"slow down"}`))
	}))
	defer srv.Close()

	if _, err := NewNewsApiClient(srv.URL, "key").Fetch(context.Background(), "TSLA", 5); !errors.Is(err, customerrors.ErrUpstream) {
		t.Errorf("expected ErrUpstream for rate limit, got %v", err)
	}
	if _, err := NewNewsApiClient(srv.URL, "").Fetch(context.Background(), "TSLA", 5); !errors.Is(err, customerrors.ErrUpstream) {
		t.Errorf("expected ErrUpstream without key, got %v", err)
	}
}
