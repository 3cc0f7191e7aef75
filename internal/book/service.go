package book

import (
	"context"
	"fmt"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return Book{}, fmt.Errorf("get book %s: %w", isbn, err)
	}
	return b, nil
}

// Create stores a new book and returns it as persisted.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	b := in.Book()
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return Book{}, fmt.Errorf("create book %s: %w", b.ISBN, err)
	}
	return created, nil
}

// Update replaces every non-key field of the book identified by isbn.
func (s *Service) Update(ctx context.Context, isbn string, in Input) (Book, error) {
	if in.ISBN != nil && *in.ISBN != isbn {
		return Book{}, ErrISBNMismatch
	}
	b := in.Book()
	b.ISBN = isbn
	updated, err := s.repo.Update(ctx, isbn, b)
	if err != nil {
		return Book{}, fmt.Errorf("update book %s: %w", isbn, err)
	}
	return updated, nil
}

// Delete removes the book identified by isbn.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	if err := s.repo.Delete(ctx, isbn); err != nil {
		return fmt.Errorf("delete book %s: %w", isbn, err)
	}
	return nil
}
