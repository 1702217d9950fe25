package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sentinance/customerrors"
	"sentinance/model"
	"sentinance/util"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const alphaVantageURL = "https://www.alphavantage.co"

type AlphaVantageClient struct {
	client *resty.Client
	apiKey string
}

func NewAlphaVantageClient(baseURL, apiKey string) *AlphaVantageClient {
	if baseURL == "" {
		baseURL = alphaVantageURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json")

	return &AlphaVantageClient{client: client, apiKey: apiKey}
}

func (a *AlphaVantageClient) Name() string { return "alphavantage" }

// GetQuote combines GLOBAL_QUOTE with the OVERVIEW details call. A failed
// details call leaves name and market cap to their defaults.
func (a *AlphaVantageClient) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	var gq model.AlphaGlobalQuoteResponse
	if err := a.query(ctx, "GLOBAL_QUOTE", symbol, nil, &gq); err != nil {
		return nil, err
	}
	if msg := throttled(gq.Note, gq.Information); msg != "" {
		return nil, fmt.Errorf("alphavantage: %s: %w", msg, customerrors.ErrUpstream)
	}
	if gq.GlobalQuote.Symbol == "" {
		return nil, fmt.Errorf("alphavantage: no quote for %s: %w", symbol, customerrors.ErrNotFound)
	}

	price, ok := util.ParseDecimal(gq.GlobalQuote.Price)
	if !ok {
		return nil, fmt.Errorf("alphavantage: unparsable price %q: %w", gq.GlobalQuote.Price, customerrors.ErrUpstream)
	}
	change, _ := util.ParseDecimal(gq.GlobalQuote.ChangePercent)
	volume, _ := util.ParseInt(gq.GlobalQuote.Volume)

	quote := &model.Quote{
		Symbol:        symbol,
		Price:         util.RoundToTwo(price),
		ChangePercent: util.RoundToTwo(change),
		Volume:        volume,
	}
	if day, err := time.Parse(util.DateLayout, gq.GlobalQuote.LatestTradingDay); err == nil {
		quote.AsOf = day
	}

	if overview, err := a.overview(ctx, symbol); err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("alphavantage details unavailable, using defaults")
	} else {
		quote.Name = overview.Name
		quote.Currency = overview.Currency
		if mc, ok := util.ParseDecimal(overview.MarketCapitalization); ok {
			quote.MarketCap = mc
		}
	}

	quote.Normalize()
	return quote, nil
}

// GetHistory returns the compact daily series restricted to [now-days, now].
func (a *AlphaVantageClient) GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error) {
	var series model.AlphaDailySeriesResponse
	if err := a.query(ctx, "TIME_SERIES_DAILY", symbol, map[string]string{"outputsize": "compact"}, &series); err != nil {
		return nil, err
	}
	if series.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage: %s: %w", series.ErrorMessage, customerrors.ErrNotFound)
	}
	if msg := throttled(series.Note, series.Information); msg != "" {
		return nil, fmt.Errorf("alphavantage: %s: %w", msg, customerrors.ErrUpstream)
	}

	start := util.WindowStart(time.Now(), days)
	list := make([]model.PricePoint, 0, len(series.TimeSeries))
	for date, bar := range series.TimeSeries {
		if date < start {
			continue
		}
		point, ok := parseAlphaBar(date, bar)
		if ok && point.Valid() {
			list = append(list, point)
		}
	}

	return list, nil
}

func (a *AlphaVantageClient) overview(ctx context.Context, symbol string) (*model.AlphaOverviewResponse, error) {
	var ov model.AlphaOverviewResponse
	if err := a.query(ctx, "OVERVIEW", symbol, nil, &ov); err != nil {
		return nil, err
	}
	if msg := throttled(ov.Note, ov.Information); msg != "" {
		return nil, fmt.Errorf("alphavantage: %s: %w", msg, customerrors.ErrUpstream)
	}
	if ov.Symbol == "" {
		return nil, fmt.Errorf("alphavantage: no overview for %s: %w", symbol, customerrors.ErrNotFound)
	}
	return &ov, nil
}

func (a *AlphaVantageClient) query(ctx context.Context, function, symbol string, extra map[string]string, target any) error {
	req := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": function,
			"symbol":   symbol,
			"apikey":   a.apiKey,
		})
	if extra != nil {
		req.SetQueryParams(extra)
	}

	resp, err := req.Get("/query")
	if err != nil {
		return customerrors.Upstream("alphavantage", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("alphavantage: status %d: %w", resp.StatusCode(), customerrors.ErrUpstream)
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("alphavantage: decode %s: %w: %v", function, customerrors.ErrUpstream, err)
	}
	return nil
}

func parseAlphaBar(date string, bar model.AlphaDailyBar) (model.PricePoint, bool) {
	open, ok1 := util.ParseDecimal(bar.Open)
	high, ok2 := util.ParseDecimal(bar.High)
	low, ok3 := util.ParseDecimal(bar.Low)
	closePrice, ok4 := util.ParseDecimal(bar.Close)
	volume, ok5 := util.ParseInt(bar.Volume)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return model.PricePoint{}, false
	}
	return model.PricePoint{
		Date:   date,
		Open:   util.RoundToTwo(open),
		High:   util.RoundToTwo(high),
		Low:    util.RoundToTwo(low),
		Close:  util.RoundToTwo(closePrice),
		Volume: volume,
	}, true
}

func throttled(note, information string) string {
	return strings.TrimSpace(note + " " + information)
}
