package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vocabquiz/internal/config"
	"vocabquiz/internal/domain"
	"vocabquiz/internal/layout"
	"vocabquiz/internal/render"
	"vocabquiz/internal/repository"
	"vocabquiz/internal/repository/postgres"
	"vocabquiz/internal/service"
	"vocabquiz/internal/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("run_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], logger); err != nil {
		logger.Fatal("Quiz generation failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// run executes the whole pipeline: load, sample, compose, lay out, render
func run(ctx context.Context, cfg *config.Config, args []string, logger *zap.Logger) error {
	cache, closeCache, err := newWordCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	scraper := source.NewScraper(cfg.SourceURL, source.Labels{
		ID:      cfg.Labels.ID,
		Term:    cfg.Labels.Term,
		Meaning: cfg.Labels.Meaning,
	}, cfg.FetchTimeout, logger)
	words := source.NewCachedSource(cache, scraper, logger)

	quizService := service.NewQuizService(words, cfg.Title, logger)

	params := domain.ParseParams(args)
	quiz, err := quizService.Generate(ctx, params)
	if err != nil {
		return err
	}

	if err := render.PrintPreview(os.Stdout, quiz); err != nil {
		return fmt.Errorf("failed to print preview: %w", err)
	}

	logger.Info("Rendering PDF", zap.String("output", params.Output))

	pdf, err := render.NewPDFRenderer(cfg.FontPath, layout.A4, logger)
	if err != nil {
		return err
	}

	opts := layout.DefaultOptions()
	opts.Labels = [layout.FieldsPerRow]string{cfg.Labels.ID, cfg.Labels.Term, cfg.Labels.Meaning}
	instructions := layout.NewPaginator(opts, pdf).Layout(quiz)

	if err := pdf.RenderFile(params.Output, instructions); err != nil {
		return err
	}

	logger.Info("PDF written", zap.String("output", params.Output))
	return nil
}

// newWordCache returns the database cache when configured, else the JSON file cache
func newWordCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.WordCache, func(), error) {
	if !cfg.Database.Enabled() {
		return source.NewFileCache(cfg.CachePath), func() {}, nil
	}

	db, err := postgres.Connect(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := postgres.Migrate(db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("Using database word cache", zap.String("host", cfg.Database.Host))
	return postgres.NewWordRepo(db), func() { db.Close() }, nil
}
