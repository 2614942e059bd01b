package testutil

import (
	"context"

	"vocabquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordSource is a mock for repository.WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) Load(ctx context.Context) ([]domain.WordEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

// MockWordCache is a mock for repository.WordCache
type MockWordCache struct {
	mock.Mock
}

func (m *MockWordCache) Load(ctx context.Context) ([]domain.WordEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

func (m *MockWordCache) Save(ctx context.Context, entries []domain.WordEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
