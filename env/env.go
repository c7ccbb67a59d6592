package env

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/supakorn-kn/go-catalog/catalog"
)

type Env struct {
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	Catalog  CatalogConfig `envPrefix:"CATALOG_"`
}

type CatalogConfig struct {
	MaxTitleLength   int      `env:"MAX_TITLE_LENGTH" envDefault:"40"`
	Genres           []string `env:"GENRES" envSeparator:"," envDefault:"Fantasy,Horror,Detective,Cartoon,Comedy"`
	// Unset keeps the catalog default, Horror when it is one of Genres.
	RestrictedGenres []string `env:"RESTRICTED_GENRES" envSeparator:","`

	FavoritesAllowDuplicates bool `env:"FAVORITES_ALLOW_DUPLICATES" envDefault:"false"`
	FavoritesRequireBook     bool `env:"FAVORITES_REQUIRE_BOOK" envDefault:"false"`
}

func (e *Env) Validate() error {

	if _, err := e.Level(); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	if e.Catalog.MaxTitleLength < 1 {
		return fmt.Errorf("CATALOG_MAX_TITLE_LENGTH must be at least 1")
	}

	if len(e.Catalog.Genres) == 0 {
		return fmt.Errorf("CATALOG_GENRES must contain at least one genre")
	}

	for _, genre := range e.Catalog.Genres {
		if genre == "" {
			return fmt.Errorf("CATALOG_GENRES must not contain an empty genre")
		}
	}

	for _, genre := range e.Catalog.RestrictedGenres {
		if !slices.Contains(e.Catalog.Genres, genre) {
			return fmt.Errorf("CATALOG_RESTRICTED_GENRES contains %q which is not in CATALOG_GENRES", genre)
		}
	}

	return nil
}

// Level parses LogLevel, e.g. "debug" or "WARN".
func (e *Env) Level() (slog.Level, error) {

	var level slog.Level
	err := level.UnmarshalText([]byte(e.LogLevel))
	return level, err
}

// Settings converts the catalog configuration for catalog.NewCatalog.
func (c CatalogConfig) Settings(logger *slog.Logger) catalog.Settings {

	return catalog.Settings{
		MaxTitleLength:   c.MaxTitleLength,
		Genres:           c.Genres,
		RestrictedGenres: c.RestrictedGenres,
		Favorites: catalog.FavoritesPolicy{
			AllowDuplicates: c.FavoritesAllowDuplicates,
			RequireBook:     c.FavoritesRequireBook,
		},
		Logger: logger,
	}
}

// Parse reads the configuration from environment, or from the process environment when it is nil.
func Parse(environment map[string]string) (*Env, error) {

	cfg := Env{}

	var err error
	if environment == nil {
		err = env.Parse(&cfg)
	} else {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: environment})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

var (
	cfg     *Env
	loadErr error
	once    sync.Once
)

// GetEnv loads the optional .env file and the process environment once.
func GetEnv() (*Env, error) {

	once.Do(func() {
		_ = godotenv.Load()
		cfg, loadErr = Parse(nil)
	})

	return cfg, loadErr
}
