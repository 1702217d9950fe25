package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"sentinance/cache"
	"sentinance/customerrors"
	"sentinance/model"
)

type stubProvider struct {
	quotes  map[string]*model.Quote
	history []model.PricePoint
	calls   atomic.Int32
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) GetQuote(_ context.Context, symbol string) (*model.Quote, error) {
	p.calls.Add(1)
	q, ok := p.quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("stub: %s: %w", symbol, customerrors.ErrNotFound)
	}
	copied := *q
	return &copied, nil
}

func (p *stubProvider) GetHistory(_ context.Context, symbol string, _ int) ([]model.PricePoint, error) {
	p.calls.Add(1)
	if p.history == nil {
		return nil, fmt.Errorf("stub: %s: %w", symbol, customerrors.ErrUpstream)
	}
	return append([]model.PricePoint(nil), p.history...), nil
}

type stubText struct {
	items []model.TextItem
	err   error
}

func (s *stubText) Fetch(_ context.Context, _ string, limit int) ([]model.TextItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.items) > limit {
		return s.items[:limit], nil
	}
	return s.items, nil
}

// stubClassifier answers from a map keyed by text, defaulting to neutral.
type stubClassifier struct {
	byText map[string]model.Classification
	err    error
	seen   atomic.Int32
}

func (c *stubClassifier) Classify(_ context.Context, text string) (model.Classification, error) {
	c.seen.Add(1)
	if c.err != nil {
		return model.Classification{}, c.err
	}
	if r, ok := c.byText[text]; ok {
		return r, nil
	}
	return model.Classification{Label: model.LabelNeutral, Confidence: 0.9}, nil
}

func staticDirectory(records ...model.TickerRecord) *TickerServiceImpl {
	return NewTickerServiceWithLoader(func(context.Context) ([]model.TickerRecord, error) {
		return records, nil
	})
}

func newTestStore() *cache.LocalStore {
	return cache.NewLocalStore(time.Minute, time.Minute)
}
