package client

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"sentinance/customerrors"
	"sentinance/model"
	"sentinance/util"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const yahooRssURL = "https://feeds.finance.yahoo.com/rss/2.0/headline"

// YahooRssClient reads the Yahoo Finance headline feed for a ticker.
type YahooRssClient struct {
	feedURL   string
	userAgent string
	timeout   time.Duration
}

func NewYahooRssClient(feedURL string) *YahooRssClient {
	if feedURL == "" {
		feedURL = yahooRssURL
	}
	return &YahooRssClient{
		feedURL:   feedURL,
		userAgent: "Mozilla/5.0 (compatible; sentinance/1.0)",
		timeout:   10 * time.Second,
	}
}

func (y *YahooRssClient) Fetch(ctx context.Context, ticker string, limit int) ([]model.TextItem, error) {
	limit = clampLimit(limit, 100)

	c := colly.NewCollector(
		colly.UserAgent(y.userAgent),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(y.timeout)

	var (
		items    []model.TextItem
		fetchErr error
	)

	c.OnXML("//item", func(e *colly.XMLElement) {
		text := composeText(e.ChildText("title"), stripHTML(e.ChildText("description")))
		if text == "" {
			return
		}
		published, ok := util.ParseFeedTime(e.ChildText("pubDate"))
		if !ok {
			published = time.Now().UTC()
		}
		items = append(items, model.TextItem{
			Source:    model.SourceNews,
			RawText:   text,
			CreatedAt: published,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("yahoorss: status %d: %w: %v", r.StatusCode, customerrors.ErrUpstream, err)
	})

	query := url.Values{}
	query.Set("s", ticker)
	query.Set("region", "US")
	query.Set("lang", "en-US")

	if err := c.Visit(y.feedURL + "?" + query.Encode()); err != nil && fetchErr == nil {
		fetchErr = customerrors.Upstream("yahoorss", err)
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// stripHTML reduces feed descriptions, which may carry markup, to plain text.
func stripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
