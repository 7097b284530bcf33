package store

import (
	"sort"
	"sync"

	"bookstore/internal/entity"
)

// CustomerStore is an in-memory customer registry.
type CustomerStore struct {
	mu        sync.RWMutex
	nextID    int64
	customers map[int64]entity.Customer
}

// NewCustomerStore creates an empty customer registry.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{nextID: 1, customers: make(map[int64]entity.Customer)}
}

// Create assigns a fresh id and stores the customer.
func (s *CustomerStore) Create(c entity.Customer) entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID
	s.nextID++
	s.customers[c.ID] = c
	return c
}

// Get returns the customer or entity.ErrCustomerNotFound.
func (s *CustomerStore) Get(id int64) (entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return entity.Customer{}, entity.ErrCustomerNotFound
	}
	return c, nil
}

// Update replaces an existing customer.
func (s *CustomerStore) Update(c entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.ID]; !ok {
		return entity.ErrCustomerNotFound
	}
	s.customers[c.ID] = c
	return nil
}

// Delete removes a customer by id.
func (s *CustomerStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return entity.ErrCustomerNotFound
	}
	delete(s.customers, id)
	return nil
}

// List returns all customers ordered by id.
func (s *CustomerStore) List() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
