package model

// Alpha Vantage reports every number as a string.

type AlphaGlobalQuoteResponse struct {
	GlobalQuote AlphaGlobalQuote `json:"Global Quote"`
	Note        string           `json:"Note"`
	Information string           `json:"Information"`
}

type AlphaGlobalQuote struct {
	Symbol           string `json:"01. symbol"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	ChangePercent    string `json:"10. change percent"`
}

type AlphaOverviewResponse struct {
	Symbol               string `json:"Symbol"`
	Name                 string `json:"Name"`
	Currency             string `json:"Currency"`
	MarketCapitalization string `json:"MarketCapitalization"`
	Note                 string `json:"Note"`
	Information          string `json:"Information"`
}

type AlphaDailySeriesResponse struct {
	TimeSeries   map[string]AlphaDailyBar `json:"Time Series (Daily)"`
	ErrorMessage string                   `json:"Error Message"`
	Note         string                   `json:"Note"`
	Information  string                   `json:"Information"`
}

type AlphaDailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}
