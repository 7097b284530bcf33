package entity

// Cart holds a customer's reserved quantities keyed by book id. Every entry
// has quantity > 0; an entry is removed rather than set to zero. Quantities in
// the cart are already deducted from the books' stock.
type Cart struct {
	CustomerID int64         `json:"customer_id"`
	Items      map[int64]int `json:"items"`
}
