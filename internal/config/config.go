package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Env          string        `env:"QUIZ_ENV" envDefault:"development"`
	FontPath     string        `env:"QUIZ_FONT_PATH" envDefault:"./font.ttf"`
	CachePath    string        `env:"QUIZ_CACHE_PATH" envDefault:"./words.json"`
	SourceURL    string        `env:"QUIZ_SOURCE_URL" envDefault:"https://ukaru-eigo.com/teppeki-word-list/"`
	FetchTimeout time.Duration `env:"QUIZ_FETCH_TIMEOUT" envDefault:"30s"`
	Title        string        `env:"QUIZ_TITLE" envDefault:"鉄壁テスト"`
	Labels       LabelConfig
	Database     DatabaseConfig
}

// LabelConfig holds the column labels of the source table and the quiz table
type LabelConfig struct {
	ID      string `env:"QUIZ_LABEL_ID" envDefault:"番号"`
	Term    string `env:"QUIZ_LABEL_TERM" envDefault:"英単語"`
	Meaning string `env:"QUIZ_LABEL_MEANING" envDefault:"意味"`
}

// DatabaseConfig holds the optional word cache database settings
type DatabaseConfig struct {
	Host     string `env:"QUIZ_DB_HOST"`
	Port     string `env:"QUIZ_DB_PORT" envDefault:"5432"`
	Name     string `env:"QUIZ_DB_NAME" envDefault:"vocabquiz"`
	User     string `env:"QUIZ_DB_USER" envDefault:"vocabquiz"`
	Password string `env:"QUIZ_DB_PASSWORD"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "production" {
		return fmt.Errorf("QUIZ_ENV must be development or production, got %q", c.Env)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("QUIZ_FETCH_TIMEOUT must be positive")
	}
	if c.Labels.ID == "" || c.Labels.Term == "" || c.Labels.Meaning == "" {
		return fmt.Errorf("QUIZ_LABEL_ID, QUIZ_LABEL_TERM and QUIZ_LABEL_MEANING must not be empty")
	}
	if c.Database.Enabled() && c.Database.Password == "" {
		return fmt.Errorf("QUIZ_DB_PASSWORD is required when QUIZ_DB_HOST is set")
	}
	return nil
}

// Enabled reports whether the database word cache is configured
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
	)
}
