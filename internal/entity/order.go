package entity

import "time"

// Order is an immutable snapshot of a cart taken at commit time. Items maps
// book id to ordered quantity and is never mutated after creation.
type Order struct {
	ID         int64         `json:"id"`
	CustomerID int64         `json:"customer_id"`
	Items      map[int64]int `json:"items"`
	CreatedAt  time.Time     `json:"created_at"`
}
