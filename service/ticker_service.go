package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"sentinance/customerrors"
	"sentinance/model"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type TickerService interface {
	List(ctx context.Context) ([]model.TickerRecord, error)
	Listings(ctx context.Context) ([]model.TickerListing, error)
	Lookup(ctx context.Context, symbol string) (model.TickerRecord, bool)
}

// TickerLoader produces the raw snapshot. The default reads a JSON file.
type TickerLoader func(ctx context.Context) ([]model.TickerRecord, error)

type TickerServiceImpl struct {
	load    TickerLoader
	mu      sync.Mutex
	loaded  atomic.Bool
	records []model.TickerRecord
	index   *cache.Cache
}

func NewTickerService(path string) TickerService {
	return NewTickerServiceWithLoader(FileTickerLoader(path))
}

// NewTickerServiceWithLoader attempts the first load eagerly. A failure is
// logged and retried on the next call.
func NewTickerServiceWithLoader(load TickerLoader) *TickerServiceImpl {
	s := &TickerServiceImpl{
		load:  load,
		index: cache.New(cache.NoExpiration, 0),
	}

	if err := s.ensureLoaded(context.Background()); err != nil {
		log.Warn().Err(err).Msg("ticker snapshot not loaded, will retry on demand")
	}

	return s
}

func FileTickerLoader(path string) TickerLoader {
	return func(_ context.Context) ([]model.TickerRecord, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var records []model.TickerRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return records, nil
	}
}

func (s *TickerServiceImpl) List(ctx context.Context) ([]model.TickerRecord, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.records, nil
}

// Listings projects the snapshot onto the /stocks/list shape.
func (s *TickerServiceImpl) Listings(ctx context.Context) ([]model.TickerListing, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]model.TickerListing, 0, len(records))
	if err := copier.Copy(&listings, &records); err != nil {
		return nil, fmt.Errorf("project ticker listings: %w", err)
	}
	for i := range listings {
		listings[i].Type = model.ListingTypeEquity
		listings[i].Region = model.ListingRegionUS
	}
	return listings, nil
}

func (s *TickerServiceImpl) Lookup(ctx context.Context, symbol string) (model.TickerRecord, bool) {
	if err := s.ensureLoaded(ctx); err != nil {
		return model.TickerRecord{}, false
	}
	val, found := s.index.Get(strings.ToUpper(strings.TrimSpace(symbol)))
	if !found {
		return model.TickerRecord{}, false
	}
	return val.(model.TickerRecord), true
}

func (s *TickerServiceImpl) ensureLoaded(ctx context.Context) error {
	if s.loaded.Load() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded.Load() {
		return nil
	}

	records, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("ticker snapshot: %w: %v", customerrors.ErrDataUnavailable, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("ticker snapshot is empty: %w", customerrors.ErrDataUnavailable)
	}

	for _, r := range records {
		s.index.Set(strings.ToUpper(r.Symbol), r, cache.NoExpiration)
	}
	s.records = records
	s.loaded.Store(true)

	log.Info().Int("tickers", len(records)).Msg("ticker snapshot loaded")
	return nil
}
