package entity

import "errors"

// Sentinel errors for the service error taxonomy. Services wrap these with
// fmt.Errorf("%w: ...") to attach entity ids and reasons; the HTTP layer maps
// them to status codes with errors.Is.
var (
	ErrAuthorNotFound   = errors.New("author not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrOutOfStock       = errors.New("out of stock")
)
