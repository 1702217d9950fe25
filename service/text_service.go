package service

import (
	"context"
	"fmt"

	"sentinance/customerrors"
	"sentinance/model"
)

const (
	DefaultMentionLimit = 20
	MinMentionLimit     = 1
	MaxMentionLimit     = 100
)

// TextProvider is implemented by the reddit and news clients.
type TextProvider interface {
	Fetch(ctx context.Context, ticker string, limit int) ([]model.TextItem, error)
}

type TextService interface {
	Fetch(ctx context.Context, ticker string, source model.TextSource, limit int) ([]model.TextItem, error)
}

type TextServiceImpl struct {
	providers map[model.TextSource]TextProvider
}

func NewTextService(reddit, news TextProvider) TextService {
	return &TextServiceImpl{
		providers: map[model.TextSource]TextProvider{
			model.SourceReddit: reddit,
			model.SourceNews:   news,
		},
	}
}

func ClampLimit(limit int) int {
	if limit < MinMentionLimit {
		return MinMentionLimit
	}
	if limit > MaxMentionLimit {
		return MaxMentionLimit
	}
	return limit
}

func (s *TextServiceImpl) Fetch(ctx context.Context, ticker string, source model.TextSource, limit int) ([]model.TextItem, error) {
	provider, ok := s.providers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source %q: %w", source, customerrors.ErrInvalidInput)
	}
	if provider == nil {
		return nil, fmt.Errorf("%s: provider not configured: %w", source, customerrors.ErrUpstream)
	}

	limit = ClampLimit(limit)
	items, err := provider.Fetch(ctx, ticker, limit)
	if err != nil {
		return nil, customerrors.Upstream(string(source), err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no %s mentions for %s: %w", source, ticker, customerrors.ErrNoData)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
