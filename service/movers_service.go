package service

import (
	"context"
	"sync"
	"time"

	"sentinance/customerrors"
	"sentinance/model"

	"github.com/rs/zerolog/log"
)

type MoversService interface {
	TopMovers(ctx context.Context) (model.MoversResponse, error)
	MostActive(ctx context.Context) (model.MostActiveResponse, error)
	Warm(ctx context.Context)
}

type MoversServiceImpl struct {
	market    MarketService
	watchList []string
}

func NewMoversService(market MarketService, watchList []string) MoversService {
	return &MoversServiceImpl{
		market:    market,
		watchList: watchList,
	}
}

func (s *MoversServiceImpl) TopMovers(ctx context.Context) (model.MoversResponse, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return model.MoversResponse{}, err
	}
	return RankMovers(entries), nil
}

func (s *MoversServiceImpl) MostActive(ctx context.Context) (model.MostActiveResponse, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return model.MostActiveResponse{}, err
	}
	return RankMostActive(entries), nil
}

// Warm fetches every watch-list quote so the next request is served from cache.
func (s *MoversServiceImpl) Warm(ctx context.Context) {
	start := time.Now()
	entries, err := s.snapshot(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("watch-list warm-up skipped")
		return
	}
	log.Info().Int("symbols", len(entries)).Dur("took", time.Since(start)).Msg("watch-list quotes warmed")
}

// snapshot quotes the watch-list concurrently. A symbol whose quote fails is
// kept with zero price, change and volume.
func (s *MoversServiceImpl) snapshot(ctx context.Context) ([]model.MoverEntry, error) {
	if len(s.watchList) == 0 {
		return nil, customerrors.ErrDataUnavailable
	}

	entries := make([]model.MoverEntry, len(s.watchList))
	var wg sync.WaitGroup
	for i, symbol := range s.watchList {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			quote, err := s.market.GetQuote(ctx, symbol)
			if err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Msg("watch-list quote failed")
				entries[i] = model.MoverEntry{Symbol: symbol, Name: symbol}
				return
			}
			entries[i] = model.MoverEntry{
				Symbol:        quote.Symbol,
				Name:          quote.Name,
				Price:         quote.Price,
				ChangePercent: quote.ChangePercent,
				Volume:        quote.Volume,
			}
		}(i, symbol)
	}
	wg.Wait()

	return entries, nil
}
