package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSP500FetchConstituents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Symbol,Security,GICS Sector\nAAPL,Apple Inc.,IT\nMSFT,Microsoft,IT\n"))
	}))
	defer srv.Close()

	records, err := NewSP500Client(srv.URL).FetchConstituents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[1].Name != "Microsoft" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestSP500FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewSP500Client(srv.URL).FetchConstituents(context.Background()); err == nil {
		t.Fatal("expected error for failed download")
	}
}

func TestComposeText(t *testing.T) {
	tests := []struct{ title, body, want string }{
		{"Title", "Body", "Title\nBody"},
		{"Title", "  ", "Title"},
		{"", "Body", "Body"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := composeText(tt.title, tt.body); got != tt.want {
			t.Errorf("composeText(%q, %q) = %q, want %q", tt.title, tt.body, got, tt.want)
		}
	}
	if clampLimit(0, 100) != 1 || clampLimit(500, 100) != 100 || clampLimit(20, 100) != 20 {
		t.Error("unexpected clampLimit result")
	}
}
