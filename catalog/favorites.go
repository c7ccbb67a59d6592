package catalog

import (
	"slices"

	catalogError "github.com/supakorn-kn/go-catalog/errors"
)

// AddBookInFavorites appends title to favorites. By default a title already in favorites is ignored
// and titles outside of the catalog are accepted, see FavoritesPolicy.
func (c *Catalog) AddBookInFavorites(title string) {

	if err := c.AddFavorite(title); err != nil {
		c.logger.Debug("add favorite ignored", "title", title, "error", err)
	}
}

// AddFavorite is AddBookInFavorites reporting why the title was refused.
func (c *Catalog) AddFavorite(title string) error {

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.policy.RequireBook {
		if _, ok := c.books[title]; !ok {
			return catalogError.TitleNotFoundError.New(title)
		}
	}

	if !c.policy.AllowDuplicates && slices.Contains(c.favorites, title) {
		return catalogError.FavoriteAlreadyExistError.New(title)
	}

	c.favorites = append(c.favorites, title)

	return nil
}

// DeleteBookFromFavorites removes every occurrence of title from favorites.
func (c *Catalog) DeleteBookFromFavorites(title string) {

	if err := c.DeleteFavorite(title); err != nil {
		c.logger.Debug("delete favorite ignored", "title", title, "error", err)
	}
}

// DeleteFavorite is DeleteBookFromFavorites reporting a title that was not in favorites.
func (c *Catalog) DeleteFavorite(title string) error {

	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.favorites)
	c.favorites = slices.DeleteFunc(c.favorites, func(favorite string) bool {
		return favorite == title
	})

	if len(c.favorites) == before {
		return catalogError.FavoriteNotFoundError.New(title)
	}

	return nil
}

// GetListOfFavoritesBooks returns a copy of favorites in their current order.
func (c *Catalog) GetListOfFavoritesBooks() []string {

	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.favorites)
}

func (c *Catalog) IsFavorite(title string) bool {

	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Contains(c.favorites, title)
}
