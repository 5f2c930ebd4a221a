package book

import (
	"context"
	"errors"
)

// Service provides book-related business logic. It is the only component that
// mutates stored book state; payload shape validation happens at the HTTP
// boundary before any method here runs.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of books ordered newest first, plus the total row
// count independent of the pagination window. Pages past the end yield an
// empty list with a correct total.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]Book, int, error) {
	return s.repo.List(ctx, pageSize, (page-1)*pageSize)
}

// Search returns books whose title or author contains the query,
// case-insensitively, with the same pagination and ordering as List.
func (s *Service) Search(ctx context.Context, query string, page, pageSize int) ([]Book, int, error) {
	return s.repo.Search(ctx, query, pageSize, (page-1)*pageSize)
}

// GetByID returns the book with the given id, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new book. The ISBN is checked before the insert so
// duplicates fail fast with a DuplicateISBNError; the unique index on
// books.isbn remains the ultimate authority when two creates race.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	_, err := s.repo.GetByISBN(ctx, in.ISBN)
	if err == nil {
		return Book{}, &DuplicateISBNError{ISBN: in.ISBN}
	}
	if !errors.Is(err, ErrNotFound) {
		return Book{}, err
	}
	return s.repo.Insert(ctx, in)
}

// Update applies the non-nil fields of in to the book with the given id and
// refreshes updated_at. Changing the ISBN triggers a uniqueness check against
// all other rows first.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}

	if in.ISBN != nil && *in.ISBN != current.ISBN {
		other, err := s.repo.GetByISBN(ctx, *in.ISBN)
		if err == nil && other.ID != id {
			return Book{}, &DuplicateISBNError{ISBN: *in.ISBN}
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return Book{}, err
		}
	}

	return s.repo.Update(ctx, id, in)
}

// Delete removes the book with the given id. It reports whether a row was
// actually removed; deleting a missing id is not an error.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
