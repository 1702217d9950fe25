package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sentinance/customerrors"
	"sentinance/model"
)

func TestTickerServiceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.json")
	body := `[{"symbol":"AAPL","name":"Apple Inc."},{"symbol":"MSFT","name":"Microsoft"}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	svc := NewTickerService(path)
	listings, err := svc.Listings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	want := model.TickerListing{Symbol: "AAPL", Name: "Apple Inc.", Type: "Equity", Region: "United States"}
	if listings[0] != want {
		t.Errorf("got %+v, want %+v", listings[0], want)
	}

	rec, ok := svc.Lookup(context.Background(), " msft ")
	if !ok || rec.Name != "Microsoft" {
		t.Errorf("expected lookup to find MSFT, got %+v %v", rec, ok)
	}
	if _, ok := svc.Lookup(context.Background(), "ZZZZ"); ok {
		t.Error("expected unknown symbol lookup to fail")
	}
}

func TestTickerServiceRetriesUntilLoaded(t *testing.T) {
	attempts := 0
	svc := NewTickerServiceWithLoader(func(context.Context) ([]model.TickerRecord, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("disk not ready")
		}
		return []model.TickerRecord{{Symbol: "AAPL", Name: "Apple Inc."}}, nil
	})

	if _, err := svc.List(context.Background()); !errors.Is(err, customerrors.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	records, err := svc.List(context.Background())
	if err != nil || len(records) != 1 {
		t.Fatalf("expected loaded snapshot, got %v, %v", records, err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatal(err)
	}
	if attempts != 3 {
		t.Errorf("expected loader to stop after success, ran %d times", attempts)
	}
}

func TestTickerServiceEmptySnapshot(t *testing.T) {
	svc := staticDirectory()
	if _, err := svc.Listings(context.Background()); !errors.Is(err, customerrors.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}
