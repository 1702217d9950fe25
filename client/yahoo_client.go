package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sentinance/customerrors"
	"sentinance/middleware"
	"sentinance/model"
	"sentinance/util"

	"github.com/go-resty/resty/v2"
)

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

type YahooClient struct {
	client *resty.Client
}

func NewYahooClient(baseURL string) *YahooClient {
	if baseURL == "" {
		baseURL = yahooChartURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeaders(map[string]string{
			"Accept":          "application/json",
			"Accept-Encoding": "gzip, deflate, br",
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})
	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &YahooClient{
		client: client,
	}
}

func (y *YahooClient) Name() string { return "yahoo" }

func (y *YahooClient) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	result, err := y.fetchChart(ctx, symbol, map[string]string{
		"range":    "1d",
		"interval": "1d",
	})
	if err != nil {
		return nil, err
	}

	meta := result.Meta
	if meta.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("yahoo: no price for %s: %w", symbol, customerrors.ErrNotFound)
	}

	prev := meta.ChartPreviousClose
	if prev == 0 {
		prev = meta.PreviousClose
	}

	volume := meta.RegularMarketVolume
	if volume == 0 && len(result.Indicators.Quote) > 0 {
		if vols := result.Indicators.Quote[0].Volume; len(vols) > 0 {
			volume = vols[len(vols)-1]
		}
	}

	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}

	quote := &model.Quote{
		Symbol:        symbol,
		Name:          name,
		Price:         util.RoundToTwo(meta.RegularMarketPrice),
		Currency:      meta.Currency,
		ChangePercent: util.ChangePercent(meta.RegularMarketPrice, prev),
		Volume:        volume,
	}
	if meta.RegularMarketTime > 0 {
		quote.AsOf = time.Unix(meta.RegularMarketTime, 0).UTC()
	}
	quote.Normalize()
	return quote, nil
}

// GetHistory returns daily bars for [now-days, now] in provider order.
func (y *YahooClient) GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error) {
	now := time.Now()
	result, err := y.fetchChart(ctx, symbol, map[string]string{
		"period1":  strconv.FormatInt(now.AddDate(0, 0, -days).Unix(), 10),
		"period2":  strconv.FormatInt(now.Unix(), 10),
		"interval": "1d",
	})
	if err != nil {
		return nil, err
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no series for %s: %w", symbol, customerrors.ErrNotFound)
	}

	quote := result.Indicators.Quote[0]
	list := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		// Null rows (holidays, halted sessions) decode as zero.
		if quote.Open[i] == 0 || quote.Close[i] == 0 {
			continue
		}
		var volume int64
		if i < len(quote.Volume) {
			volume = quote.Volume[i]
		}
		point := model.PricePoint{
			Date:   util.FormatUnixDate(ts),
			Open:   util.RoundToTwo(quote.Open[i]),
			High:   util.RoundToTwo(quote.High[i]),
			Low:    util.RoundToTwo(quote.Low[i]),
			Close:  util.RoundToTwo(quote.Close[i]),
			Volume: volume,
		}
		if point.Valid() {
			list = append(list, point)
		}
	}

	return list, nil
}

func (y *YahooClient) fetchChart(ctx context.Context, symbol string, params map[string]string) (*model.Result, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/" + url.PathEscape(symbol))
	if err != nil {
		return nil, customerrors.Upstream("yahoo", err)
	}

	var chart model.YahooChartResponse
	decodeErr := json.Unmarshal(resp.Body(), &chart)

	if resp.StatusCode() == http.StatusNotFound ||
		(chart.Chart.Error != nil && chart.Chart.Error.Code == "Not Found") {
		return nil, fmt.Errorf("yahoo: no data for %s: %w", symbol, customerrors.ErrNotFound)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("yahoo: status %d: %w", resp.StatusCode(), customerrors.ErrUpstream)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo: decode chart: %w: %v", customerrors.ErrUpstream, decodeErr)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s: %w", chart.Chart.Error.Description, customerrors.ErrUpstream)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty result for %s: %w", symbol, customerrors.ErrNotFound)
	}

	return &chart.Chart.Result[0], nil
}
