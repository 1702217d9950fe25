package model

import (
	"math"
	"time"
)

const DefaultCurrency = "USD"

// Quote is the provider-agnostic point-in-time view of a symbol.
type Quote struct {
	Symbol        string    `json:"symbol" example:"AAPL"`
	Name          string    `json:"name" example:"Apple Inc."`
	Price         float64   `json:"price" example:"189.91"`
	MarketCap     float64   `json:"market_cap"`
	Currency      string    `json:"currency" example:"USD"`
	ChangePercent float64   `json:"change_percent"`
	Volume        int64     `json:"volume"`
	AsOf          time.Time `json:"last_refreshed"`
}

// Normalize fills the fields some providers leave out.
func (q *Quote) Normalize() {
	if q.Name == "" {
		q.Name = q.Symbol
	}
	if q.Currency == "" {
		q.Currency = DefaultCurrency
	}
	if q.MarketCap < 0 || math.IsNaN(q.MarketCap) {
		q.MarketCap = 0
	}
	if q.AsOf.IsZero() {
		q.AsOf = time.Now().UTC()
	}
}

// PricePoint is one daily OHLCV bar. Date is formatted as YYYY-MM-DD.
type PricePoint struct {
	Date   string  `json:"date" example:"2024-05-01"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Valid reports whether every price is finite and non-negative and volume is non-negative.
func (p PricePoint) Valid() bool {
	for _, v := range []float64{p.Open, p.High, p.Low, p.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return p.Volume >= 0
}

type MoverEntry struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
}

type MoversResponse struct {
	Gainers []MoverEntry `json:"gainers"`
	Losers  []MoverEntry `json:"losers"`
}

type MostActiveResponse struct {
	MostActive []MoverEntry `json:"most_active"`
}
