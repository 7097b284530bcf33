// Package customer implements customer CRUD. Each customer owns exactly one
// cart, created with the customer and removed with it; deleting a customer
// releases every reservation in the cart back to book stock.
package customer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"bookstore/internal/entity"
	"bookstore/internal/store"
	"bookstore/internal/validate"
)

// CustomerStore is the customer registry contract.
type CustomerStore interface {
	Create(c entity.Customer) entity.Customer
	Get(id int64) (entity.Customer, error)
	Update(c entity.Customer) error
	Delete(id int64) error
	List() []entity.Customer
}

// CartStore is the slice of cart behavior customer lifecycle needs.
type CartStore interface {
	Create(customerID int64)
	Delete(customerID int64)
	Items(customerID int64) map[int64]int
}

// BookStore is the slice of book behavior needed to release reservations.
type BookStore interface {
	Get(id int64) (entity.Book, error)
	Update(b entity.Book) error
}

// Service provides customer business logic.
type Service struct {
	customers CustomerStore
	carts     CartStore
	books     BookStore
	inv       *store.Inventory
}

// NewService creates a customer service.
func NewService(customers CustomerStore, carts CartStore, books BookStore, inv *store.Inventory) *Service {
	return &Service{customers: customers, carts: carts, books: books, inv: inv}
}

// Create validates the customer, hashes the password and stores the customer
// together with its empty cart.
func (s *Service) Create(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	if err := validate.Customer(c); err != nil {
		return entity.Customer{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("hash password: %w", err)
	}
	c.Password = string(hash)
	created := s.customers.Create(c)
	s.carts.Create(created.ID)
	log.Info().Int64("customer_id", created.ID).Msg("customer created")
	return created, nil
}

// Get returns a customer by id.
func (s *Service) Get(ctx context.Context, id int64) (entity.Customer, error) {
	c, err := s.customers.Get(id)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("%w: id %d", err, id)
	}
	return c, nil
}

// List returns all customers.
func (s *Service) List(ctx context.Context) []entity.Customer {
	return s.customers.List()
}

// Update validates and replaces an existing customer's fields, rehashing the
// password.
func (s *Service) Update(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	if _, err := s.customers.Get(c.ID); err != nil {
		return entity.Customer{}, fmt.Errorf("%w: id %d", err, c.ID)
	}
	if err := validate.Customer(c); err != nil {
		return entity.Customer{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("hash password: %w", err)
	}
	c.Password = string(hash)
	if err := s.customers.Update(c); err != nil {
		return entity.Customer{}, fmt.Errorf("%w: id %d", err, c.ID)
	}
	return c, nil
}

// Delete removes a customer and its cart, returning every reserved quantity
// to the corresponding book's stock first. Runs under the inventory lock so
// no reservation is lost or double-released.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.customers.Get(id); err != nil {
		return fmt.Errorf("%w: id %d", err, id)
	}

	s.inv.Lock()
	defer s.inv.Unlock()

	for bookID, qty := range s.carts.Items(id) {
		book, err := s.books.Get(bookID)
		if err != nil {
			// Book deleted after the reservation; nothing to restore.
			continue
		}
		book.Stock += qty
		if err := s.books.Update(book); err != nil {
			return fmt.Errorf("release stock for book %d: %w", bookID, err)
		}
	}
	s.carts.Delete(id)
	if err := s.customers.Delete(id); err != nil {
		return fmt.Errorf("%w: id %d", err, id)
	}
	log.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}
