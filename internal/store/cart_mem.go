package store

import (
	"sync"

	"bookstore/internal/entity"
)

// CartStore holds each customer's cart: a bookID -> quantity mapping. A cart
// is created alongside its customer and removed with it. Entries always hold
// quantity > 0; removing an item deletes the entry.
type CartStore struct {
	mu    sync.RWMutex
	carts map[int64]map[int64]int
}

// NewCartStore creates an empty cart registry.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int64]map[int64]int)}
}

// Create initializes an empty cart for the customer.
func (s *CartStore) Create(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[customerID]; !ok {
		s.carts[customerID] = make(map[int64]int)
	}
}

// Delete removes the customer's cart entirely.
func (s *CartStore) Delete(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, customerID)
}

// Items returns a copy of the customer's cart contents. A customer without a
// cart entry yields an empty map.
func (s *CartStore) Items(customerID int64) map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make(map[int64]int, len(s.carts[customerID]))
	for bookID, qty := range s.carts[customerID] {
		items[bookID] = qty
	}
	return items
}

// Quantity returns the reserved quantity for the book, zero if absent.
func (s *CartStore) Quantity(customerID, bookID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[customerID][bookID]
}

// Add increments the cart entry for the book by qty, inserting it if absent.
func (s *CartStore) Add(customerID, bookID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[customerID]
	if cart == nil {
		cart = make(map[int64]int)
		s.carts[customerID] = cart
	}
	cart[bookID] += qty
}

// Set overwrites the cart entry for the book with qty.
func (s *CartStore) Set(customerID, bookID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[customerID]
	if cart == nil {
		cart = make(map[int64]int)
		s.carts[customerID] = cart
	}
	cart[bookID] = qty
}

// Remove deletes the cart entry and returns the quantity it held, or
// entity.ErrCartItemNotFound if the book was not in the cart.
func (s *CartStore) Remove(customerID, bookID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	qty, ok := s.carts[customerID][bookID]
	if !ok {
		return 0, entity.ErrCartItemNotFound
	}
	delete(s.carts[customerID], bookID)
	return qty, nil
}

// Clear empties the customer's cart, keeping the cart itself.
func (s *CartStore) Clear(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[customerID]; ok {
		s.carts[customerID] = make(map[int64]int)
	}
}
