package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sentinance/customerrors"
)

func newAlphaServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "demo" {
			t.Errorf("expected apikey to be sent")
		}
		body, ok := responses[r.URL.Query().Get("function")]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestAlphaGetQuoteWithOverview(t *testing.T) {
	srv := newAlphaServer(t, map[string]string{
		"GLOBAL_QUOTE": `{"Global Quote":{"01. symbol":"IBM","05. price":"170.2500","06. volume":"3500000","07. latest trading day":"2024-05-03","08. previous close":"168.0000","10. change percent":"1.3393%"}}`,
		"OVERVIEW":     `{"Symbol":"IBM","Name":"International Business Machines","Currency":"USD","MarketCapitalization":"156000000000"}`,
	})
	defer srv.Close()

	quote, err := NewAlphaVantageClient(srv.URL, "demo").GetQuote(context.Background(), "IBM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Name != "International Business Machines" {
		t.Errorf("unexpected name %q", quote.Name)
	}
	if quote.MarketCap != 156000000000 {
		t.Errorf("unexpected market cap %v", quote.MarketCap)
	}
	if quote.Price != 170.25 || quote.ChangePercent != 1.34 || quote.Volume != 3500000 {
		t.Errorf("unexpected quote %+v", quote)
	}
}

func TestAlphaGetQuoteDetailsFailureDegrades(t *testing.T) {
	srv := newAlphaServer(t, map[string]string{
		"GLOBAL_QUOTE": `{"Global Quote":{"01. symbol":"IBM","05. price":"170.2500","06. volume":"10","07. latest trading day":"2024-05-03","10. change percent":"0%"}}`,
	})
	defer srv.Close()

	quote, err := NewAlphaVantageClient(srv.URL, "demo").GetQuote(context.Background(), "IBM")
	if err != nil {
		t.Fatalf("expected quote despite failed details call, got %v", err)
	}
	if quote.Name != "IBM" || quote.MarketCap != 0 || quote.Currency != "USD" {
		t.Errorf("expected defaults, got %+v", quote)
	}
}

func TestAlphaGetQuoteUnknown(t *testing.T) {
	srv := newAlphaServer(t, map[string]string{"GLOBAL_QUOTE": `{"Global Quote":{}}`})
	defer srv.Close()

	_, err := NewAlphaVantageClient(srv.URL, "demo").GetQuote(context.Background(), "NOPE")
	if !errors.Is(err, customerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAlphaRateLimited(t *testing.T) {
	srv := newAlphaServer(t, map[string]string{"GLOBAL_QUOTE": `{"Note":"Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`})
	defer srv.Close()

	_, err := NewAlphaVantageClient(srv.URL, "demo").GetQuote(context.Background(), "IBM")
	if !errors.Is(err, customerrors.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestAlphaGetHistoryWindow(t *testing.T) {
	today := time.Now().UTC()
	recent := today.AddDate(0, 0, -2).Format("2006-01-02")
	old := today.AddDate(0, 0, -40).Format("2006-01-02")
	series := fmt.Sprintf(`{"Time Series (Daily)":{
		%q:{"1. open":"10.0","2. high":"11.0","3. low":"9.5","4. close":"10.5","5. volume":"100"},
		%q:{"1. open":"8.0","2. high":"9.0","3. low":"7.5","4. close":"8.5","5. volume":"50"}}}`, recent, old)

	srv := newAlphaServer(t, map[string]string{"TIME_SERIES_DAILY": series})
	defer srv.Close()

	points, err := NewAlphaVantageClient(srv.URL, "demo").GetHistory(context.Background(), "IBM", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Date != recent {
		t.Fatalf("expected only the in-window bar, got %+v", points)
	}
}

func TestAlphaGetHistoryInvalidSymbol(t *testing.T) {
	srv := newAlphaServer(t, map[string]string{"TIME_SERIES_DAILY": `{"Error Message":"Invalid API call."}`})
	defer srv.Close()

	_, err := NewAlphaVantageClient(srv.URL, "demo").GetHistory(context.Background(), "NOPE", 30)
	if !errors.Is(err, customerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
