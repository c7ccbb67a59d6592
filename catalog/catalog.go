package catalog

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	catalogError "github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/objects"
)

const (
	// MaxTitleLength is the longest accepted title, in characters. Titles of exactly this length are accepted.
	MaxTitleLength = 40

	// RestrictedGenre is the genre excluded from the children-safe view.
	RestrictedGenre = "Horror"
)

var allowedGenres = []string{"Fantasy", "Horror", "Detective", "Cartoon", "Comedy"}

// DefaultGenres returns the default genre list of a catalog.
func DefaultGenres() []string {
	return slices.Clone(allowedGenres)
}

// FavoritesPolicy controls how AddBookInFavorites treats repeated and unknown titles.
type FavoritesPolicy struct {
	// AllowDuplicates appends a title even if it is already in favorites.
	AllowDuplicates bool

	// RequireBook only accepts titles that are already in the catalog.
	RequireBook bool
}

// Settings configures a Catalog. Zero values fall back to the package defaults.
// A nil RestrictedGenres means RestrictedGenre when it is one of Genres; an empty non-nil list restricts no genre.
// Every restricted genre must be one of Genres.
type Settings struct {
	MaxTitleLength   int
	Genres           []string
	RestrictedGenres []string
	Favorites        FavoritesPolicy
	Logger           *slog.Logger
}

// Catalog keeps the book to genre mapping in insertion order together with the favorites list.
type Catalog struct {
	mu sync.RWMutex

	books     map[string]string
	order     []string
	favorites []string

	genres     []string
	restricted map[string]struct{}
	policy     FavoritesPolicy
	logger     *slog.Logger

	validation *validation
}

// New creates a catalog with the default settings.
func New() *Catalog {

	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}

	return c
}

func NewCatalog(settings ...Settings) (*Catalog, error) {

	settingsLen := len(settings)
	if settingsLen > 1 {
		return nil, catalogError.InvalidSettingsError.New("Settings can have only one element")
	}

	var s Settings
	if settingsLen == 1 {
		s = settings[0]
	}

	if s.MaxTitleLength < 0 {
		return nil, catalogError.InvalidSettingsError.New("MaxTitleLength value can be only positive integer")
	} else if s.MaxTitleLength == 0 {
		s.MaxTitleLength = MaxTitleLength
	}

	if len(s.Genres) == 0 {
		s.Genres = DefaultGenres()
	}

	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	for _, genre := range s.Genres {
		if genre == "" {
			return nil, catalogError.InvalidSettingsError.New("Genres must not contain an empty genre")
		}
	}

	genres := make([]string, 0, len(s.Genres))
	for _, genre := range s.Genres {
		if !slices.Contains(genres, genre) {
			genres = append(genres, genre)
		}
	}

	if s.RestrictedGenres == nil {
		s.RestrictedGenres = []string{}
		if slices.Contains(genres, RestrictedGenre) {
			s.RestrictedGenres = append(s.RestrictedGenres, RestrictedGenre)
		}
	}

	restricted := make(map[string]struct{}, len(s.RestrictedGenres))
	for _, genre := range s.RestrictedGenres {
		if !slices.Contains(genres, genre) {
			return nil, catalogError.InvalidSettingsError.New(fmt.Sprintf("RestrictedGenres contains %q which is not one of Genres", genre))
		}

		restricted[genre] = struct{}{}
	}

	validation, err := newValidation(s.MaxTitleLength, genres)
	if err != nil {
		return nil, catalogError.InvalidSettingsError.New(err)
	}

	c := &Catalog{
		books:      map[string]string{},
		order:      []string{},
		favorites:  []string{},
		genres:     genres,
		restricted: restricted,
		policy:     s.Favorites,
		logger:     s.Logger,
		validation: validation,
	}

	c.logger.Debug("catalog created",
		"max_title_length", s.MaxTitleLength,
		"genres", genres,
		"restricted_genres", s.RestrictedGenres,
	)

	return c, nil
}

// AddNewBook adds the book with no genre. Invalid and already known titles are ignored.
func (c *Catalog) AddNewBook(title string) {

	if err := c.AddBook(title); err != nil {
		c.logger.Debug("add book ignored", "title", title, "error", err)
	}
}

// AddBook is AddNewBook reporting why a title was refused.
func (c *Catalog) AddBook(title string) error {

	if err := c.ValidateTitle(title); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.books[title]; ok {
		return catalogError.DuplicatedTitleError.New(title)
	}

	c.books[title] = ""
	c.order = append(c.order, title)

	return nil
}

// SetBookGenre assigns genre to a known book. Unknown books and genres are ignored.
func (c *Catalog) SetBookGenre(title, genre string) {

	if err := c.SetGenre(title, genre); err != nil {
		c.logger.Debug("set genre ignored", "title", title, "genre", genre, "error", err)
	}
}

// SetGenre is SetBookGenre reporting why the genre was not assigned.
func (c *Catalog) SetGenre(title, genre string) error {

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.books[title]; !ok {
		return catalogError.TitleNotFoundError.New(title)
	}

	if err := c.ValidateGenre(genre); err != nil {
		return err
	}

	c.books[title] = genre

	return nil
}

// GetBookGenre returns the genre of the book and false when the book is not in the catalog.
// A known book without a genre yields "" and true.
func (c *Catalog) GetBookGenre(title string) (string, bool) {

	c.mu.RLock()
	defer c.mu.RUnlock()

	genre, ok := c.books[title]
	return genre, ok
}

func (c *Catalog) GetBooksWithSpecificGenre(genre string) []string {

	c.mu.RLock()
	defer c.mu.RUnlock()

	titles := []string{}
	for _, title := range c.order {
		if c.books[title] == genre {
			titles = append(titles, title)
		}
	}

	return titles
}

// GetBooksGenre returns a copy of the whole title to genre mapping.
func (c *Catalog) GetBooksGenre() map[string]string {

	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.books)
}

// GetBooksForChildren returns the books with a genre that is not restricted.
func (c *Catalog) GetBooksForChildren() []string {

	c.mu.RLock()
	defer c.mu.RUnlock()

	titles := []string{}
	for _, title := range c.order {
		if c.isForChildren(c.books[title]) {
			titles = append(titles, title)
		}
	}

	return titles
}

// IsForChildren reports whether the book is in the catalog and children-safe.
func (c *Catalog) IsForChildren(title string) bool {

	c.mu.RLock()
	defer c.mu.RUnlock()

	genre, ok := c.books[title]
	return ok && c.isForChildren(genre)
}

func (c *Catalog) isForChildren(genre string) bool {

	if genre == "" {
		return false
	}

	_, restricted := c.restricted[genre]
	return !restricted
}

// AddBooks adds every row keyed by its ID and assigns the row genre when it has one.
// Empty rows are skipped. Like AddNewBook and SetBookGenre, refused rows are ignored.
func (c *Catalog) AddBooks(books ...objects.Book) {

	for _, book := range books {

		if book.IsNil() {
			c.logger.Debug("add empty book row ignored")
			continue
		}

		c.AddNewBook(book.GetID())
		if book.HasGenre() {
			c.SetBookGenre(book.GetID(), book.Genre)
		}
	}
}

// Books returns the catalog rows in insertion order.
func (c *Catalog) Books() []objects.Book {

	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]objects.Book, 0, len(c.order))
	for _, title := range c.order {
		books = append(books, objects.Book{Title: title, Genre: c.books[title]})
	}

	return books
}

func (c *Catalog) HasBook(title string) bool {

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.books[title]
	return ok
}

func (c *Catalog) Len() int {

	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Genres returns the genres this catalog accepts.
func (c *Catalog) Genres() []string {
	return slices.Clone(c.genres)
}

func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog(books: %d, favorites: %d)", c.Len(), len(c.GetListOfFavoritesBooks()))
}
