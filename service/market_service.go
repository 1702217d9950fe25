package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"sentinance/cache"
	"sentinance/customerrors"
	"sentinance/model"
	"sentinance/tracing"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultHistoryDays = 30
	MinHistoryDays     = 1
	MaxHistoryDays     = 100

	QuoteCacheTTL   = time.Minute
	HistoryCacheTTL = 10 * time.Minute
)

// MarketDataProvider is implemented by each upstream market data client.
type MarketDataProvider interface {
	Name() string
	GetQuote(ctx context.Context, symbol string) (*model.Quote, error)
	GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error)
}

type MarketService interface {
	GetQuote(ctx context.Context, symbol string) (*model.Quote, error)
	GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error)
}

type MarketServiceImpl struct {
	provider  MarketDataProvider
	directory TickerService
}

func NewMarketService(provider MarketDataProvider, directory TickerService) MarketService {
	return &MarketServiceImpl{
		provider:  provider,
		directory: directory,
	}
}

func ClampDays(days int) int {
	if days < MinHistoryDays {
		return MinHistoryDays
	}
	if days > MaxHistoryDays {
		return MaxHistoryDays
	}
	return days
}

func (s *MarketServiceImpl) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	ctx, span := tracing.StartSpan(ctx, "market.quote")
	span.SetAttributes(attribute.String("symbol", symbol), attribute.String("provider", s.provider.Name()))

	quote, err := s.provider.GetQuote(ctx, symbol)
	if err != nil {
		err = customerrors.Upstream(s.provider.Name(), err)
		tracing.End(span, err)
		return nil, err
	}

	if quote.Name == "" || quote.Name == quote.Symbol {
		if rec, ok := s.directory.Lookup(ctx, symbol); ok {
			quote.Name = rec.Name
		}
	}
	quote.Normalize()

	tracing.End(span, nil)
	return quote, nil
}

// GetHistory returns at most days bars, ascending by date.
func (s *MarketServiceImpl) GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error) {
	days = ClampDays(days)

	ctx, span := tracing.StartSpan(ctx, "market.history")
	span.SetAttributes(attribute.String("symbol", symbol), attribute.Int("days", days))

	points, err := s.provider.GetHistory(ctx, symbol, days)
	if err != nil {
		err = customerrors.Upstream(s.provider.Name(), err)
		tracing.End(span, err)
		return nil, err
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	if len(points) > days {
		points = points[len(points)-days:]
	}
	if len(points) == 0 {
		err = fmt.Errorf("no price history for %s: %w", symbol, customerrors.ErrNotFound)
		tracing.End(span, err)
		return nil, err
	}

	tracing.End(span, nil)
	return points, nil
}

// CachedProvider serves repeated quote and history calls from a Store.
// Only successful results are cached.
type CachedProvider struct {
	next  MarketDataProvider
	store cache.Store
}

func NewCachedProvider(next MarketDataProvider, store cache.Store) *CachedProvider {
	return &CachedProvider{next: next, store: store}
}

func (c *CachedProvider) Name() string { return c.next.Name() }

func (c *CachedProvider) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	key := "quote_" + c.next.Name() + "_" + symbol

	var cached model.Quote
	if ok := c.lookup(ctx, key, &cached); ok {
		return &cached, nil
	}

	quote, err := c.next.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, quote, QuoteCacheTTL)
	return quote, nil
}

func (c *CachedProvider) GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error) {
	key := fmt.Sprintf("history_%s_%s_%d", c.next.Name(), symbol, days)

	var cached []model.PricePoint
	if ok := c.lookup(ctx, key, &cached); ok {
		return cached, nil
	}

	points, err := c.next.GetHistory(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, points, HistoryCacheTTL)
	return points, nil
}

func (c *CachedProvider) lookup(ctx context.Context, key string, target any) bool {
	found, err := c.store.Get(ctx, key, target)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("market cache read failed")
		return false
	}
	return found
}

func (c *CachedProvider) save(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := c.store.Set(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("market cache write failed")
	}
}
