package cache

import (
	"context"
	"testing"
	"time"
)

type sample struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore(time.Minute, time.Minute)
	ctx := context.Background()

	if err := store.Set(ctx, "quote_AAPL", sample{Symbol: "AAPL", Price: 190.5}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got sample
	ok, err := store.Get(ctx, "quote_AAPL", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Price != 190.5 {
		t.Errorf("expected price 190.5, got %f", got.Price)
	}
}

func TestLocalStoreExpiry(t *testing.T) {
	store := NewLocalStore(time.Minute, time.Minute)
	ctx := context.Background()

	_ = store.Set(ctx, "short", sample{Symbol: "X"}, 50*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	var got sample
	if ok, _ := store.Get(ctx, "short", &got); ok {
		t.Error("expected entry to be expired")
	}
}

func TestLocalStoreMiss(t *testing.T) {
	store := NewLocalStore(time.Minute, time.Minute)
	var got sample
	ok, err := store.Get(context.Background(), "missing", &got)
	if ok || err != nil {
		t.Errorf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}
