package env

import (
	"log/slog"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
	"github.com/supakorn-kn/go-catalog/catalog"
	"github.com/supakorn-kn/go-catalog/objects"
)

type EnvTestSuite struct {
	suite.Suite
}

func (s *EnvTestSuite) TestParse() {

	s.Run("Should use defaults for empty environment", func() {

		cfg, err := Parse(map[string]string{})
		s.Require().NoError(err)

		s.Require().Equal("info", cfg.LogLevel)
		s.Require().Equal(catalog.MaxTitleLength, cfg.Catalog.MaxTitleLength)
		s.Require().Equal(catalog.DefaultGenres(), cfg.Catalog.Genres)
		s.Require().Empty(cfg.Catalog.RestrictedGenres)
		s.Require().False(cfg.Catalog.FavoritesAllowDuplicates)
		s.Require().False(cfg.Catalog.FavoritesRequireBook)
	})

	s.Run("Should read values from environment", func() {

		maxTitleLength := gofakeit.IntRange(1, 100)

		cfg, err := Parse(map[string]string{
			"LOG_LEVEL":                          "debug",
			"CATALOG_MAX_TITLE_LENGTH":           strconv.Itoa(maxTitleLength),
			"CATALOG_GENRES":                     "Poetry,Opera",
			"CATALOG_RESTRICTED_GENRES":          "Opera",
			"CATALOG_FAVORITES_ALLOW_DUPLICATES": "true",
			"CATALOG_FAVORITES_REQUIRE_BOOK":     "true",
		})
		s.Require().NoError(err)

		level, err := cfg.Level()
		s.Require().NoError(err)
		s.Require().Equal(slog.LevelDebug, level)

		s.Require().Equal(maxTitleLength, cfg.Catalog.MaxTitleLength)
		s.Require().Equal([]string{"Poetry", "Opera"}, cfg.Catalog.Genres)
		s.Require().Equal([]string{"Opera"}, cfg.Catalog.RestrictedGenres)
		s.Require().True(cfg.Catalog.FavoritesAllowDuplicates)
		s.Require().True(cfg.Catalog.FavoritesRequireBook)
	})

	s.Run("Should throw error when value cannot be parsed", func() {

		cfg, err := Parse(map[string]string{"CATALOG_MAX_TITLE_LENGTH": "forty"})
		s.Require().Error(err)
		s.Require().Nil(cfg)
	})

	s.Run("Should throw error when config is invalid", func() {

		for name, environment := range map[string]map[string]string{
			"Zero max title length": {"CATALOG_MAX_TITLE_LENGTH": "0"},
			"Empty genre":           {"CATALOG_GENRES": "Poetry,,Opera"},
			"Unknown log level":     {"LOG_LEVEL": "loud"},
			"Unknown restricted":    {"CATALOG_GENRES": "Poetry", "CATALOG_RESTRICTED_GENRES": "Horror"},
			"Empty restricted":      {"CATALOG_RESTRICTED_GENRES": "Horror,"},
		} {
			cfg, err := Parse(environment)
			s.Require().Error(err, name)
			s.Require().Nil(cfg, name)
		}
	})
}

func (s *EnvTestSuite) TestSettings() {

	s.Run("Should build a working catalog", func() {

		cfg, err := Parse(map[string]string{
			"CATALOG_GENRES":                 "Poetry,Opera",
			"CATALOG_RESTRICTED_GENRES":      "Opera",
			"CATALOG_FAVORITES_REQUIRE_BOOK": "true",
		})
		s.Require().NoError(err)

		c, err := catalog.NewCatalog(cfg.Catalog.Settings(slog.Default()))
		s.Require().NoError(err)

		c.AddNewBook("Leaves of Grass")
		c.SetBookGenre("Leaves of Grass", "Poetry")
		c.AddNewBook("Carmen")
		c.SetBookGenre("Carmen", "Opera")
		c.AddBookInFavorites("Unknown")

		s.Require().Equal([]string{"Poetry", "Opera"}, c.Genres())
		s.Require().Equal([]string{"Leaves of Grass"}, c.GetBooksForChildren())
		s.Require().Empty(c.GetListOfFavoritesBooks())
	})
}

func (s *EnvTestSuite) TestDefaultRestrictedGenre() {

	cfg, err := Parse(map[string]string{})
	s.Require().NoError(err)

	c, err := catalog.NewCatalog(cfg.Catalog.Settings(slog.Default()))
	s.Require().NoError(err)

	c.AddBooks(objects.Book{Title: "It", Genre: "Horror"}, objects.Book{Title: "Shrek", Genre: "Cartoon"})
	s.Require().Equal([]string{"Shrek"}, c.GetBooksForChildren())
}

func TestEnv(t *testing.T) {
	suite.Run(t, new(EnvTestSuite))
}
