// Package order implements the order processor: converting a customer's cart
// into an immutable order. Stock was already deducted when items entered the
// cart, so commit validates every line item, snapshots the cart and clears it
// without touching stock again. Validation of all items completes before any
// effect, so a failing item aborts the whole operation with state unchanged.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore/internal/entity"
	"bookstore/internal/store"
)

// BookStore is the slice of book behavior order commit needs.
type BookStore interface {
	Get(id int64) (entity.Book, error)
}

// CartStore is the slice of cart behavior order commit needs.
type CartStore interface {
	Items(customerID int64) map[int64]int
	Clear(customerID int64)
}

// CustomerStore is the slice of customer behavior the processor needs.
type CustomerStore interface {
	Get(id int64) (entity.Customer, error)
}

// OrderStore is the order registry contract.
type OrderStore interface {
	Create(o entity.Order) entity.Order
	Get(id int64) (entity.Order, error)
	ListByCustomer(customerID int64) []entity.Order
}

// Service provides order business logic.
type Service struct {
	books     BookStore
	carts     CartStore
	customers CustomerStore
	orders    OrderStore
	inv       *store.Inventory
	now       func() time.Time
}

// NewService creates an order service.
func NewService(books BookStore, carts CartStore, customers CustomerStore, orders OrderStore, inv *store.Inventory) *Service {
	return &Service{
		books:     books,
		carts:     carts,
		customers: customers,
		orders:    orders,
		inv:       inv,
		now:       time.Now,
	}
}

// Create converts the customer's cart into a new order. The cart must be
// non-empty; every line item's book must still exist and hold enough stock
// (a defensive re-check: reservation already deducted these quantities, so a
// shortfall here means stock was corrected downward through a direct book
// update). All items are validated before any effect; on success the cart
// snapshot becomes the order's items and the cart is cleared.
func (s *Service) Create(ctx context.Context, customerID int64) (entity.Order, error) {
	if _, err := s.customers.Get(customerID); err != nil {
		return entity.Order{}, fmt.Errorf("%w: id %d", err, customerID)
	}

	s.inv.Lock()
	defer s.inv.Unlock()

	items := s.carts.Items(customerID)
	if len(items) == 0 {
		return entity.Order{}, fmt.Errorf("%w: cart is empty", entity.ErrInvalidInput)
	}

	for bookID, qty := range items {
		book, err := s.books.Get(bookID)
		if err != nil {
			return entity.Order{}, fmt.Errorf("%w: id %d", err, bookID)
		}
		if book.Stock < qty {
			return entity.Order{}, fmt.Errorf("%w: book id %d, available %d, required %d",
				entity.ErrOutOfStock, bookID, book.Stock, qty)
		}
	}

	created := s.orders.Create(entity.Order{
		CustomerID: customerID,
		Items:      items,
		CreatedAt:  s.now(),
	})
	s.carts.Clear(customerID)

	log.Info().
		Int64("order_id", created.ID).
		Int64("customer_id", customerID).
		Int("line_items", len(created.Items)).
		Msg("order created")
	return created, nil
}

// ListByCustomer returns all orders belonging to the customer.
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) []entity.Order {
	return s.orders.ListByCustomer(customerID)
}

// Get returns the order only when it exists and belongs to the customer.
func (s *Service) Get(ctx context.Context, customerID, orderID int64) (entity.Order, error) {
	o, err := s.orders.Get(orderID)
	if err != nil || o.CustomerID != customerID {
		return entity.Order{}, fmt.Errorf("%w: id %d", entity.ErrOrderNotFound, orderID)
	}
	return o, nil
}
