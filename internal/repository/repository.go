package repository

import (
	"context"
	"errors"

	"vocabquiz/internal/domain"
)

// ErrCacheMiss is returned by a WordCache that holds no word list yet
var ErrCacheMiss = errors.New("word list not cached")

// WordSource supplies the ordered vocabulary list
type WordSource interface {
	Load(ctx context.Context) ([]domain.WordEntry, error)
}

// WordCache is a WordSource that can also persist a fetched list
type WordCache interface {
	WordSource
	Save(ctx context.Context, entries []domain.WordEntry) error
}
