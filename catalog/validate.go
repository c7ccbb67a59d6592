package catalog

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	catalogError "github.com/supakorn-kn/go-catalog/errors"
)

const genreTag = "genre"

type validation struct {
	validate       *validator.Validate
	titleTag       string
	maxTitleLength int
}

func newValidation(maxTitleLength int, genres []string) (*validation, error) {

	validate := validator.New()

	err := validate.RegisterValidation(genreTag, func(fl validator.FieldLevel) bool {
		return slices.Contains(genres, fl.Field().String())
	})
	if err != nil {
		return nil, err
	}

	return &validation{
		validate: validate,
		// max counts characters, not bytes
		titleTag:       fmt.Sprintf("required,max=%d", maxTitleLength),
		maxTitleLength: maxTitleLength,
	}, nil
}

// ValidateTitle checks that title is valid UTF-8, not empty and not longer than the catalog allows.
func (c *Catalog) ValidateTitle(title string) error {

	if !utf8.ValidString(title) {
		return catalogError.TitleEncodingInvalidError.New(title)
	}

	err := c.validation.validate.Var(title, c.validation.titleTag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return catalogError.UnknownError.New(err)
	}

	switch validationErrors[0].Tag() {
	case "required":
		return catalogError.InvalidTitleError.New()
	case "max":
		return catalogError.TitleTooLongError.New(title, c.validation.maxTitleLength)
	default:
		return catalogError.UnknownError.New(err)
	}
}

// ValidateGenre checks that genre is one of the catalog genres.
func (c *Catalog) ValidateGenre(genre string) error {

	err := c.validation.validate.Var(genre, genreTag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return catalogError.UnknownError.New(err)
	}

	return catalogError.GenreNotAllowedError.New(genre)
}
