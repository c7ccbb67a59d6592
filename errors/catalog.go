package errors

const (
	InvalidTitleErrorCode         = 300_001
	TitleTooLongErrorCode         = 300_002
	DuplicatedTitleErrorCode      = 300_003
	TitleNotFoundErrorCode        = 300_004
	GenreNotAllowedErrorCode      = 300_005
	FavoriteAlreadyExistErrorCode = 300_006
	FavoriteNotFoundErrorCode     = 300_007
	TitleEncodingInvalidErrorCode = 300_008
)

// InvalidTitleError indicates user gives an empty book title
var InvalidTitleError = new(InvalidTitleErrorCode, "InvalidTitle", "Book title must not be empty")

// TitleTooLongError indicates user gives a title longer than the catalog allows
var TitleTooLongError = new(TitleTooLongErrorCode, "TitleTooLong", "Book title %q is longer than %d characters")

// DuplicatedTitleError indicates user adds a book whose title is already in the catalog
var DuplicatedTitleError = new(DuplicatedTitleErrorCode, "DuplicatedTitle", "Book %q is already in the catalog")

// TitleNotFoundError indicates user refers to a book that is not in the catalog
var TitleNotFoundError = new(TitleNotFoundErrorCode, "TitleNotFound", "Book %q is not in the catalog")

// GenreNotAllowedError indicates user gives a genre outside of the configured genre list
var GenreNotAllowedError = new(GenreNotAllowedErrorCode, "GenreNotAllowed", "Genre %q is not allowed")

// FavoriteAlreadyExistError indicates user adds a book that is already in favorites
var FavoriteAlreadyExistError = new(FavoriteAlreadyExistErrorCode, "FavoriteAlreadyExist", "Book %q is already in favorites")

// FavoriteNotFoundError indicates user removes a book that is not in favorites
var FavoriteNotFoundError = new(FavoriteNotFoundErrorCode, "FavoriteNotFound", "Book %q is not in favorites")

// TitleEncodingInvalidError indicates user gives a title that is not valid UTF-8 text
var TitleEncodingInvalidError = new(TitleEncodingInvalidErrorCode, "TitleEncodingInvalid", "Book title %q is not valid UTF-8")
