// Package store provides the in-memory registries backing the bookstore
// service. Each store is a mutex-guarded map keyed by a monotonically
// increasing int64 id assigned on creation and never reused. Reads return
// copies so callers cannot mutate registry state from outside.
package store

import (
	"sort"
	"sync"

	"bookstore/internal/entity"
)

// AuthorStore is an in-memory author registry.
type AuthorStore struct {
	mu      sync.RWMutex
	nextID  int64
	authors map[int64]entity.Author
}

// NewAuthorStore creates an empty author registry.
func NewAuthorStore() *AuthorStore {
	return &AuthorStore{nextID: 1, authors: make(map[int64]entity.Author)}
}

// Create assigns a fresh id and stores the author.
func (s *AuthorStore) Create(a entity.Author) entity.Author {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextID
	s.nextID++
	s.authors[a.ID] = a
	return a
}

// Get returns the author or entity.ErrAuthorNotFound.
func (s *AuthorStore) Get(id int64) (entity.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.authors[id]
	if !ok {
		return entity.Author{}, entity.ErrAuthorNotFound
	}
	return a, nil
}

// Update replaces an existing author.
func (s *AuthorStore) Update(a entity.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.authors[a.ID]; !ok {
		return entity.ErrAuthorNotFound
	}
	s.authors[a.ID] = a
	return nil
}

// Delete removes an author by id.
func (s *AuthorStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.authors[id]; !ok {
		return entity.ErrAuthorNotFound
	}
	delete(s.authors, id)
	return nil
}

// List returns all authors ordered by id.
func (s *AuthorStore) List() []entity.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
