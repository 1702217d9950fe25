package model

// --- Huma Structs ---

type TickerInput struct {
	Ticker string `path:"ticker" doc:"Ticker symbol" example:"AAPL"`
}

type HistoryInput struct {
	Ticker string `path:"ticker" doc:"Ticker symbol" example:"AAPL"`
	Days   int    `query:"days" default:"30" doc:"Days of history, clamped to 1..100"`
}

type SentimentInput struct {
	Ticker string `path:"ticker" doc:"Ticker symbol" example:"TSLA"`
	Source string `query:"source" default:"reddit" doc:"reddit or news"`
	Limit  int    `query:"limit" default:"20" doc:"Number of mentions, clamped to 1..100"`
}

type TickerListOutput struct {
	Body []TickerListing
}

type QuoteOutput struct {
	Body Quote
}

type HistoryOutput struct {
	Body []PricePoint
}

type SentimentOutput struct {
	Body SentimentSummary
}

type HeatmapOutput struct {
	Body HeatmapResponse
}

type MoversOutput struct {
	Body MoversResponse
}

type MostActiveOutput struct {
	Body MostActiveResponse
}
