package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var RateLimiterCache = cache.New(10*time.Minute, 20*time.Minute)

// Store is the response cache shared by the market data layer. Values are
// stored as JSON so local and Redis backends behave the same.
type Store interface {
	Get(ctx context.Context, key string, target any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// LocalStore is the in-process Store used when no Redis URL is configured.
type LocalStore struct {
	items *cache.Cache
}

func NewLocalStore(defaultExpiration, cleanupInterval time.Duration) *LocalStore {
	return &LocalStore{items: cache.New(defaultExpiration, cleanupInterval)}
}

func (s *LocalStore) Get(_ context.Context, key string, target any) (bool, error) {
	val, found := s.items.Get(key)
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(val.([]byte), target); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (s *LocalStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	s.items.Set(key, data, ttl)
	return nil
}
