package store

import (
	"sort"
	"sync"

	"bookstore/internal/entity"
)

// BookStore is an in-memory book registry. Stock mutations go through Update;
// callers needing check-then-act atomicity across stock and cart state hold
// the shared Inventory lock around their Get/Update sequence.
type BookStore struct {
	mu     sync.RWMutex
	nextID int64
	books  map[int64]entity.Book
}

// NewBookStore creates an empty book registry.
func NewBookStore() *BookStore {
	return &BookStore{nextID: 1, books: make(map[int64]entity.Book)}
}

// Create assigns a fresh id and stores the book.
func (s *BookStore) Create(b entity.Book) entity.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID
	s.nextID++
	s.books[b.ID] = b
	return b
}

// Get returns the book or entity.ErrBookNotFound.
func (s *BookStore) Get(id int64) (entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[id]
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}
	return b, nil
}

// Update replaces an existing book.
func (s *BookStore) Update(b entity.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[b.ID]; !ok {
		return entity.ErrBookNotFound
	}
	s.books[b.ID] = b
	return nil
}

// Delete removes a book by id.
func (s *BookStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return entity.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

// List returns all books ordered by id.
func (s *BookStore) List() []entity.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListByAuthor returns all books referencing the author, ordered by id.
func (s *BookStore) ListByAuthor(authorID int64) []entity.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Book, 0)
	for _, b := range s.books {
		if b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
