package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"sentinance/customerrors"
	"sentinance/model"

	"github.com/go-resty/resty/v2"
)

const (
	newsApiURL     = "https://newsapi.org"
	removedArticle = "[Removed]"
)

type NewsApiClient struct {
	client *resty.Client
	apiKey string
}

func NewNewsApiClient(baseURL, apiKey string) *NewsApiClient {
	if baseURL == "" {
		baseURL = newsApiURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &NewsApiClient{client: client, apiKey: apiKey}
}

// Fetch searches articles for ticker, newest first. Articles without a title
// or description are skipped.
func (n *NewsApiClient) Fetch(ctx context.Context, ticker string, limit int) ([]model.TextItem, error) {
	if n.apiKey == "" {
		return nil, fmt.Errorf("newsapi: api key not configured: %w", customerrors.ErrUpstream)
	}
	limit = clampLimit(limit, 100)

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", n.apiKey).
		SetQueryParams(map[string]string{
			"q":        ticker,
			"sortBy":   "publishedAt",
			"language": "en",
			"pageSize": strconv.Itoa(limit),
		}).
		Get("/v2/everything")
	if err != nil {
		return nil, customerrors.Upstream("newsapi", err)
	}

	var out model.NewsApiResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("newsapi: decode: %w: %v", customerrors.ErrUpstream, err)
	}
	if !resp.IsSuccess() || out.Status != "ok" {
		return nil, fmt.Errorf("newsapi: %s %s (status %d): %w", out.Code, out.Message, resp.StatusCode(), customerrors.ErrUpstream)
	}

	items := make([]model.TextItem, 0, len(out.Articles))
	for _, a := range out.Articles {
		if a.Title == removedArticle {
			continue
		}
		text := composeText(a.Title, a.Description)
		if text == "" {
			continue
		}
		items = append(items, model.TextItem{
			Source:    model.SourceNews,
			RawText:   text,
			CreatedAt: a.PublishedAt.UTC(),
		})
		if len(items) == limit {
			break
		}
	}

	return items, nil
}
