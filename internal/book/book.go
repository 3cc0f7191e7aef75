package book

import (
	"errors"
)

var (
	// ErrNotFound is returned when no book has the requested ISBN.
	ErrNotFound = errors.New("book not found")
	// ErrConflict is returned when a book with the same ISBN already exists.
	ErrConflict = errors.New("book already exists")
	// ErrISBNMismatch is returned when an update body names a different ISBN than the path.
	ErrISBNMismatch = errors.New("isbn in body does not match isbn in path")
)

// Book represents a row of the books table.
type Book struct {
	ISBN      string `json:"isbn"`
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}
