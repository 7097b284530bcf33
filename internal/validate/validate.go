// Package validate holds the stateless input-correctness rules shared by the
// catalog, customer, cart and order services. Every function is pure and runs
// before any mutation; failures wrap entity.ErrInvalidInput with the reason.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"bookstore/internal/entity"
)

var (
	isbnPattern  = regexp.MustCompile(`^\d{3}-\d{10}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)
)

// ISBN reports whether s matches the store's XXX-XXXXXXXXXX format.
func ISBN(s string) bool {
	return isbnPattern.MatchString(s)
}

// Email reports whether s looks like local@domain.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Required checks that a string field is non-empty after trimming.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", entity.ErrInvalidInput, field)
	}
	return nil
}

// Quantity checks that a cart or order quantity is positive.
func Quantity(q int) error {
	if q <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", entity.ErrInvalidInput)
	}
	return nil
}

// Book checks every static rule on a book: required fields, ISBN format,
// price and stock bounds, and that the publication year is not in the future.
func Book(b entity.Book) error {
	if err := Required("title", b.Title); err != nil {
		return err
	}
	if b.AuthorID <= 0 {
		return fmt.Errorf("%w: author id is required", entity.ErrInvalidInput)
	}
	if err := Required("isbn", b.ISBN); err != nil {
		return err
	}
	if !ISBN(b.ISBN) {
		return fmt.Errorf("%w: invalid ISBN format, expected XXX-XXXXXXXXXX", entity.ErrInvalidInput)
	}
	if b.Price <= 0 {
		return fmt.Errorf("%w: price must be a positive value", entity.ErrInvalidInput)
	}
	if b.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", entity.ErrInvalidInput)
	}
	if b.PublicationYear > time.Now().Year() {
		return fmt.Errorf("%w: publication year cannot be in the future", entity.ErrInvalidInput)
	}
	return nil
}

// Author checks the required name fields on an author.
func Author(a entity.Author) error {
	if err := Required("first name", a.FirstName); err != nil {
		return err
	}
	return Required("last name", a.LastName)
}

// Customer checks names, email format and password presence.
func Customer(c entity.Customer) error {
	if err := Required("first name", c.FirstName); err != nil {
		return err
	}
	if err := Required("last name", c.LastName); err != nil {
		return err
	}
	if !Email(c.Email) {
		return fmt.Errorf("%w: invalid email format", entity.ErrInvalidInput)
	}
	return Required("password", c.Password)
}
