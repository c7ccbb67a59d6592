package main

import (
	"log/slog"
	"os"

	"github.com/supakorn-kn/go-catalog/catalog"
	"github.com/supakorn-kn/go-catalog/env"
	"github.com/supakorn-kn/go-catalog/objects"
)

var sampleBooks = []objects.Book{
	{Title: "The Lord of the Rings", Genre: "Fantasy"},
	{Title: "Who Framed Roger Rabbit?", Genre: "Comedy"},
	{Title: "The Shining", Genre: "Horror"},
	{Title: "The Hound of the Baskervilles", Genre: "Detective"},
	{Title: "The Lion King", Genre: "Cartoon"},
	{Title: "Unsorted notes"},
}

func main() {

	cfg, err := env.GetEnv()
	if err != nil {
		slog.Error("Load config failed", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	c, err := catalog.NewCatalog(cfg.Catalog.Settings(logger))
	if err != nil {
		slog.Error("Create catalog failed", "error", err)
		os.Exit(1)
	}

	c.AddBooks(sampleBooks...)

	c.AddBookInFavorites("The Lion King")
	c.AddBookInFavorites("The Lord of the Rings")

	for _, book := range c.Books() {
		slog.Info("book", "title", book.Title, "genre", book.Genre, "for_children", c.IsForChildren(book.Title))
	}

	for _, genre := range c.Genres() {
		slog.Info("genre", "name", genre, "books", c.GetBooksWithSpecificGenre(genre))
	}

	slog.Info("catalog",
		"books", c.Len(),
		"for_children", c.GetBooksForChildren(),
		"favorites", c.GetListOfFavoritesBooks(),
	)
}
