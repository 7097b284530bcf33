package entity

// Customer represents a store customer. Password holds the bcrypt hash of the
// submitted password; it is never returned in responses.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"-"`
}
