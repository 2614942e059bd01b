package testutil

import (
	"fmt"

	"vocabquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry
func NewTestEntry(id int, term, meaning string) domain.WordEntry {
	return domain.WordEntry{
		ID:      id,
		Term:    term,
		Meaning: meaning,
	}
}

// NewTestEntries creates n numbered entries with ids 1..n
func NewTestEntries(n int) []domain.WordEntry {
	entries := make([]domain.WordEntry, n)
	for i := range entries {
		entries[i] = NewTestEntry(i+1, fmt.Sprintf("word%d", i+1), fmt.Sprintf("意味%d", i+1))
	}
	return entries
}
