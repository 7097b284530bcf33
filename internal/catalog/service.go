// Package catalog implements author and book CRUD with referential integrity:
// a book must reference an existing author, and an author with books cannot
// be deleted.
package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookstore/internal/entity"
	"bookstore/internal/validate"
)

// AuthorStore is the author registry contract the catalog needs.
type AuthorStore interface {
	Create(a entity.Author) entity.Author
	Get(id int64) (entity.Author, error)
	Update(a entity.Author) error
	Delete(id int64) error
	List() []entity.Author
}

// BookStore is the book registry contract the catalog needs.
type BookStore interface {
	Create(b entity.Book) entity.Book
	Get(id int64) (entity.Book, error)
	Update(b entity.Book) error
	Delete(id int64) error
	List() []entity.Book
	ListByAuthor(authorID int64) []entity.Book
}

// Service provides catalog business logic.
type Service struct {
	authors AuthorStore
	books   BookStore
}

// NewService creates a catalog service.
func NewService(authors AuthorStore, books BookStore) *Service {
	return &Service{authors: authors, books: books}
}

// CreateAuthor validates and stores a new author.
func (s *Service) CreateAuthor(ctx context.Context, a entity.Author) (entity.Author, error) {
	if err := validate.Author(a); err != nil {
		return entity.Author{}, err
	}
	created := s.authors.Create(a)
	log.Info().Int64("author_id", created.ID).Msg("author created")
	return created, nil
}

// GetAuthor returns an author by id.
func (s *Service) GetAuthor(ctx context.Context, id int64) (entity.Author, error) {
	a, err := s.authors.Get(id)
	if err != nil {
		return entity.Author{}, fmt.Errorf("%w: id %d", err, id)
	}
	return a, nil
}

// ListAuthors returns all authors.
func (s *Service) ListAuthors(ctx context.Context) []entity.Author {
	return s.authors.List()
}

// UpdateAuthor validates and replaces an existing author's fields.
func (s *Service) UpdateAuthor(ctx context.Context, a entity.Author) (entity.Author, error) {
	if _, err := s.authors.Get(a.ID); err != nil {
		return entity.Author{}, fmt.Errorf("%w: id %d", err, a.ID)
	}
	if err := validate.Author(a); err != nil {
		return entity.Author{}, err
	}
	if err := s.authors.Update(a); err != nil {
		return entity.Author{}, fmt.Errorf("%w: id %d", err, a.ID)
	}
	return a, nil
}

// DeleteAuthor removes an author. Deletion is blocked while any book still
// references the author.
func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	if _, err := s.authors.Get(id); err != nil {
		return fmt.Errorf("%w: id %d", err, id)
	}
	if len(s.books.ListByAuthor(id)) > 0 {
		return fmt.Errorf("%w: author has existing books and cannot be deleted", entity.ErrInvalidInput)
	}
	if err := s.authors.Delete(id); err != nil {
		return fmt.Errorf("%w: id %d", err, id)
	}
	log.Info().Int64("author_id", id).Msg("author deleted")
	return nil
}

// BooksByAuthor returns the author's books.
func (s *Service) BooksByAuthor(ctx context.Context, id int64) ([]entity.Book, error) {
	if _, err := s.authors.Get(id); err != nil {
		return nil, fmt.Errorf("%w: id %d", err, id)
	}
	return s.books.ListByAuthor(id), nil
}

// CreateBook validates and stores a new book. The referenced author must
// exist.
func (s *Service) CreateBook(ctx context.Context, b entity.Book) (entity.Book, error) {
	if err := validate.Book(b); err != nil {
		return entity.Book{}, err
	}
	if _, err := s.authors.Get(b.AuthorID); err != nil {
		return entity.Book{}, fmt.Errorf("%w: id %d", err, b.AuthorID)
	}
	created := s.books.Create(b)
	log.Info().Int64("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return created, nil
}

// GetBook returns a book by id.
func (s *Service) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	b, err := s.books.Get(id)
	if err != nil {
		return entity.Book{}, fmt.Errorf("%w: id %d", err, id)
	}
	return b, nil
}

// ListBooks returns all books.
func (s *Service) ListBooks(ctx context.Context) []entity.Book {
	return s.books.List()
}

// UpdateBook validates and replaces an existing book's fields, stock
// included: a direct update is the authoritative stock correction path.
func (s *Service) UpdateBook(ctx context.Context, b entity.Book) (entity.Book, error) {
	if _, err := s.books.Get(b.ID); err != nil {
		return entity.Book{}, fmt.Errorf("%w: id %d", err, b.ID)
	}
	if err := validate.Book(b); err != nil {
		return entity.Book{}, err
	}
	if _, err := s.authors.Get(b.AuthorID); err != nil {
		return entity.Book{}, fmt.Errorf("%w: id %d", err, b.AuthorID)
	}
	if err := s.books.Update(b); err != nil {
		return entity.Book{}, fmt.Errorf("%w: id %d", err, b.ID)
	}
	return b, nil
}

// DeleteBook removes a book. Quantities already reserved in carts are not
// released; a later order commit surfaces the missing book as a fatal
// inconsistency.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	if err := s.books.Delete(id); err != nil {
		return fmt.Errorf("%w: id %d", err, id)
	}
	log.Info().Int64("book_id", id).Msg("book deleted")
	return nil
}
