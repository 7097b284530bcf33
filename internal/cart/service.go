// Package cart implements the cart manager. A cart entry is a reservation:
// the quantity it holds has already been deducted from the book's stock, so
// cart state and stock are two halves of a single conserved quantity. Every
// mutation runs as one critical section under the shared inventory lock and
// either applies completely or leaves state untouched.
package cart

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookstore/internal/entity"
	"bookstore/internal/store"
	"bookstore/internal/validate"
)

// BookStore is the slice of book behavior the cart manager needs.
type BookStore interface {
	Get(id int64) (entity.Book, error)
	Update(b entity.Book) error
}

// CartStore is the cart registry contract.
type CartStore interface {
	Items(customerID int64) map[int64]int
	Quantity(customerID, bookID int64) int
	Add(customerID, bookID int64, qty int)
	Set(customerID, bookID int64, qty int)
	Remove(customerID, bookID int64) (int, error)
}

// CustomerStore is the slice of customer behavior the cart manager needs.
type CustomerStore interface {
	Get(id int64) (entity.Customer, error)
}

// Service coordinates cart mutations with stock reservation and release.
type Service struct {
	books     BookStore
	carts     CartStore
	customers CustomerStore
	inv       *store.Inventory
}

// NewService creates a cart service.
func NewService(books BookStore, carts CartStore, customers CustomerStore, inv *store.Inventory) *Service {
	return &Service{books: books, carts: carts, customers: customers, inv: inv}
}

// AddItem reserves qty copies of the book for the customer: the cart entry is
// incremented and the book's stock decremented in one step. Fails with
// ErrOutOfStock when fewer than qty copies are available.
func (s *Service) AddItem(ctx context.Context, customerID, bookID int64, qty int) error {
	if err := validate.Quantity(qty); err != nil {
		return err
	}
	if _, err := s.customers.Get(customerID); err != nil {
		return fmt.Errorf("%w: id %d", err, customerID)
	}

	s.inv.Lock()
	defer s.inv.Unlock()

	book, err := s.books.Get(bookID)
	if err != nil {
		return fmt.Errorf("%w: id %d", err, bookID)
	}
	if book.Stock < qty {
		return fmt.Errorf("%w: book id %d, available %d, requested %d",
			entity.ErrOutOfStock, bookID, book.Stock, qty)
	}

	book.Stock -= qty
	if err := s.books.Update(book); err != nil {
		return fmt.Errorf("%w: id %d", err, bookID)
	}
	s.carts.Add(customerID, bookID, qty)

	log.Debug().
		Int64("customer_id", customerID).
		Int64("book_id", bookID).
		Int("quantity", qty).
		Int("stock_left", book.Stock).
		Msg("cart item added")
	return nil
}

// Get returns the customer's cart contents. Pure read.
func (s *Service) Get(ctx context.Context, customerID int64) (entity.Cart, error) {
	if _, err := s.customers.Get(customerID); err != nil {
		return entity.Cart{}, fmt.Errorf("%w: id %d", err, customerID)
	}
	return entity.Cart{CustomerID: customerID, Items: s.carts.Items(customerID)}, nil
}

// UpdateItem sets the cart entry to newQty and adjusts the book's stock by
// the difference in one step. A positive difference requires that much stock;
// a negative one returns stock. Setting the current quantity is a no-op on
// stock.
func (s *Service) UpdateItem(ctx context.Context, customerID, bookID int64, newQty int) error {
	if err := validate.Quantity(newQty); err != nil {
		return err
	}
	if _, err := s.customers.Get(customerID); err != nil {
		return fmt.Errorf("%w: id %d", err, customerID)
	}

	s.inv.Lock()
	defer s.inv.Unlock()

	book, err := s.books.Get(bookID)
	if err != nil {
		return fmt.Errorf("%w: id %d", err, bookID)
	}

	delta := newQty - s.carts.Quantity(customerID, bookID)
	if delta > 0 && book.Stock < delta {
		return fmt.Errorf("%w: book id %d, available %d, needed %d",
			entity.ErrOutOfStock, bookID, book.Stock, delta)
	}

	book.Stock -= delta
	if err := s.books.Update(book); err != nil {
		return fmt.Errorf("%w: id %d", err, bookID)
	}
	s.carts.Set(customerID, bookID, newQty)

	log.Debug().
		Int64("customer_id", customerID).
		Int64("book_id", bookID).
		Int("quantity", newQty).
		Int("delta", delta).
		Msg("cart item updated")
	return nil
}

// RemoveItem deletes the cart entry and returns its full quantity to the
// book's stock. The removed quantity is reported back to the caller. If the
// book was deleted after the reservation, the quantity is dropped.
func (s *Service) RemoveItem(ctx context.Context, customerID, bookID int64) (int, error) {
	if _, err := s.customers.Get(customerID); err != nil {
		return 0, fmt.Errorf("%w: id %d", err, customerID)
	}

	s.inv.Lock()
	defer s.inv.Unlock()

	qty, err := s.carts.Remove(customerID, bookID)
	if err != nil {
		return 0, fmt.Errorf("%w: book id %d not in cart", err, bookID)
	}

	if book, err := s.books.Get(bookID); err == nil {
		book.Stock += qty
		if err := s.books.Update(book); err != nil {
			return 0, fmt.Errorf("%w: id %d", err, bookID)
		}
	}

	log.Debug().
		Int64("customer_id", customerID).
		Int64("book_id", bookID).
		Int("quantity", qty).
		Msg("cart item removed")
	return qty, nil
}
