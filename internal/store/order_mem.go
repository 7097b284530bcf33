package store

import (
	"sort"
	"sync"

	"bookstore/internal/entity"
)

// OrderStore is an in-memory order registry. Orders are write-once: there is
// no update or delete.
type OrderStore struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]entity.Order
}

// NewOrderStore creates an empty order registry.
func NewOrderStore() *OrderStore {
	return &OrderStore{nextID: 1, orders: make(map[int64]entity.Order)}
}

// Create assigns a fresh id and stores the order.
func (s *OrderStore) Create(o entity.Order) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextID
	s.nextID++
	s.orders[o.ID] = o
	return o
}

// Get returns the order or entity.ErrOrderNotFound.
func (s *OrderStore) Get(id int64) (entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return entity.Order{}, entity.ErrOrderNotFound
	}
	return o, nil
}

// ListByCustomer returns the customer's orders ordered by id.
func (s *OrderStore) ListByCustomer(customerID int64) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, 0)
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
