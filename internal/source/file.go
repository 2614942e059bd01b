package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/repository"
)

// FileCache implements repository.WordCache on a JSON file
type FileCache struct {
	path string
}

// NewFileCache creates a new file cache
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Load reads the cached word list
func (c *FileCache) Load(_ context.Context) ([]domain.WordEntry, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache %s: %w", c.path, err)
	}

	var entries []domain.WordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cache %s: %w", c.path, err)
	}
	if len(entries) == 0 {
		return nil, repository.ErrCacheMiss
	}

	return entries, nil
}

// Save writes the word list as indented JSON
func (c *FileCache) Save(_ context.Context, entries []domain.WordEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode word list: %w", err)
	}

	if err := os.WriteFile(c.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write cache %s: %w", c.path, err)
	}
	return nil
}
