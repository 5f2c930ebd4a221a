package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no book matches the given id or ISBN.
var ErrNotFound = errors.New("book not found")

// DuplicateISBNError reports an attempt to store a second book under an ISBN
// that is already taken.
type DuplicateISBNError struct {
	ISBN string
}

func (e *DuplicateISBNError) Error() string {
	return fmt.Sprintf("book with ISBN %s already exists", e.ISBN)
}

// Book represents a book entity.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	Description   *string   `json:"description,omitempty"`
	Pages         *int      `json:"pages,omitempty"`
	PublishedYear *int      `json:"publishedYear,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateInput carries the boundary-validated fields for a new book.
type CreateInput struct {
	Title         string
	Author        string
	ISBN          string
	Description   *string
	Pages         *int
	PublishedYear *int
}

// UpdateInput carries the fields of a full or partial update. Nil fields are
// left untouched on the stored row.
type UpdateInput struct {
	Title         *string
	Author        *string
	ISBN          *string
	Description   *string
	Pages         *int
	PublishedYear *int
}
