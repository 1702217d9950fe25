package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"sentinance/customerrors"
	"sentinance/model"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	redditAPIURL   = "https://oauth.reddit.com"
	redditTokenURL = "https://www.reddit.com/api/v1/access_token"

	// Communities searched for ticker mentions.
	RedditCommunities = "stocks+wallstreetbets"
)

type RedditConfig struct {
	ClientID     string
	ClientSecret string
	UserAgent    string
	BaseURL      string
	TokenURL     string
}

// RedditClient searches posts through the OAuth API using an application-only
// (client credentials) token. The oauth2 transport caches and refreshes it.
type RedditClient struct {
	client     *resty.Client
	configured bool
}

func NewRedditClient(cfg RedditConfig) *RedditClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = redditAPIURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = redditTokenURL
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// Reddit rejects token requests without a descriptive User-Agent.
	tokenHTTP := &http.Client{
		Timeout:   10 * time.Second,
		Transport: &userAgentTransport{agent: cfg.UserAgent, base: http.DefaultTransport},
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenHTTP)

	client := resty.NewWithClient(cc.Client(tokenCtx)).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(10*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	return &RedditClient{
		client:     client,
		configured: cfg.ClientID != "" && cfg.ClientSecret != "",
	}
}

// Fetch returns the newest posts mentioning ticker. Text is the title, plus the
// self text on a new line when present.
func (r *RedditClient) Fetch(ctx context.Context, ticker string, limit int) ([]model.TextItem, error) {
	if !r.configured {
		return nil, fmt.Errorf("reddit: credentials not configured: %w", customerrors.ErrUpstream)
	}
	limit = clampLimit(limit, 100)

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           ticker,
			"sort":        "new",
			"restrict_sr": "1",
			"type":        "link",
			"raw_json":    "1",
			"limit":       strconv.Itoa(limit),
		}).
		Get("/r/" + RedditCommunities + "/search")
	if err != nil {
		return nil, customerrors.Upstream("reddit", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("reddit: status %d: %w", resp.StatusCode(), customerrors.ErrUpstream)
	}

	var listing model.RedditListing
	if err := json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, fmt.Errorf("reddit: decode listing: %w: %v", customerrors.ErrUpstream, err)
	}

	items := make([]model.TextItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		post := child.Data
		text := composeText(post.Title, post.Selftext)
		if text == "" {
			continue
		}
		sec, frac := math.Modf(post.CreatedUTC)
		items = append(items, model.TextItem{
			Source:    model.SourceReddit,
			RawText:   text,
			CreatedAt: time.Unix(int64(sec), int64(frac*1e9)).UTC(),
		})
		if len(items) == limit {
			break
		}
	}

	return items, nil
}

type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(clone)
}
