package source

import (
	"context"
	"errors"
	"fmt"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/repository"

	"go.uber.org/zap"
)

// CachedSource serves the word list from a cache, fetching it on a miss
type CachedSource struct {
	cache   repository.WordCache
	fetcher repository.WordSource
	logger  *zap.Logger
}

// NewCachedSource creates a new cached source
func NewCachedSource(cache repository.WordCache, fetcher repository.WordSource, logger *zap.Logger) *CachedSource {
	return &CachedSource{
		cache:   cache,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Load returns the cached list, or fetches and caches it.
// A failure to write the cache is logged and does not fail the load.
func (s *CachedSource) Load(ctx context.Context) ([]domain.WordEntry, error) {
	entries, err := s.cache.Load(ctx)
	if err == nil {
		s.logger.Debug("Word list loaded from cache", zap.Int("entries", len(entries)))
		return entries, nil
	}

	if !errors.Is(err, repository.ErrCacheMiss) {
		s.logger.Warn("Failed to read word list cache", zap.Error(err))
	}

	entries, err = s.fetcher.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch word list: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrEmptyWordList
	}

	if err := s.cache.Save(ctx, entries); err != nil {
		s.logger.Warn("Failed to cache word list", zap.Error(err))
	}

	return entries, nil
}
