package service

import (
	"context"
	"fmt"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/random"
	"vocabquiz/internal/repository"

	"go.uber.org/zap"
)

// QuizService runs the load, sample and compose pipeline
type QuizService struct {
	source      repository.WordSource
	titlePrefix string
	newSeed     func() (uint16, error)
	logger      *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(source repository.WordSource, titlePrefix string, logger *zap.Logger) *QuizService {
	return &QuizService{
		source:      source,
		titlePrefix: titlePrefix,
		newSeed:     random.NewSeed,
		logger:      logger,
	}
}

// Generate loads the word list and builds a quiz from raw parameters
func (s *QuizService) Generate(ctx context.Context, p domain.Params) (*domain.Quiz, error) {
	entries, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrEmptyWordList
	}

	spec, err := BuildSampleSpec(p, len(entries), s.newSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to build sample spec: %w", err)
	}

	s.logger.Info("Sampling words",
		zap.Int("total", len(entries)),
		zap.Int("low", spec.Range.Low),
		zap.Int("high", spec.Range.High),
		zap.Int("count", spec.Count),
		zap.String("seed", spec.SeedHex()),
	)

	words := Sample(entries, spec)

	return &domain.Quiz{
		Title:    spec.Title(s.titlePrefix),
		Spec:     spec,
		Sections: Compose(words),
	}, nil
}
