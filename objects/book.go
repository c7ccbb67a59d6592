package objects

import "reflect"

type Book struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
}

func (b Book) GetID() string {
	return b.Title
}

// HasGenre reports whether a genre has been assigned to the book.
func (b Book) HasGenre() bool {
	return b.Genre != ""
}

func (b Book) IsNil() bool {
	return reflect.ValueOf(b).IsZero()
}
