package store

import "sync"

// Inventory serializes every check-then-act sequence spanning book stock and
// cart contents: cart add/update/remove, order commit, and the reservation
// release on customer delete. Individual store mutexes keep each registry
// internally consistent; this lock makes the cross-registry pair atomic so
// stock can never be observed negative and no reservation is lost.
type Inventory struct {
	mu sync.Mutex
}

// NewInventory creates the shared inventory lock.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Lock acquires the inventory critical section.
func (i *Inventory) Lock() { i.mu.Lock() }

// Unlock releases the inventory critical section.
func (i *Inventory) Unlock() { i.mu.Unlock() }
