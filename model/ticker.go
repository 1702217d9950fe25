package model

const (
	ListingTypeEquity = "Equity"
	ListingRegionUS   = "United States"
)

// TickerRecord is one row of the ticker snapshot file.
type TickerRecord struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// TickerListing is the directory entry exposed by /stocks/list.
type TickerListing struct {
	Symbol string `json:"symbol" example:"AAPL"`
	Name   string `json:"name" example:"Apple Inc."`
	Type   string `json:"type" example:"Equity"`
	Region string `json:"region" example:"United States"`
}
