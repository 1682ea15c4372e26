// Package memory implements an in-memory cart repository.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"cartflow/pkg/cart"
)

// Repository provides an in-memory implementation of cart.Repository.
//
// The cart map is guarded by an RWMutex used only to look up or register
// carts; each cart carries its own lock, so adds against different carts
// never contend with one another.
type Repository struct {
	mu    sync.RWMutex
	carts map[string]*cartEntry
}

type cartEntry struct {
	mu    sync.Mutex
	items map[string]*cart.Item
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{carts: make(map[string]*cartEntry)}
}

// AddItem adds quantity units of itemName to the cart, creating the cart
// and the item as needed, and returns the cart's new total. Arguments are
// validated before any cart is created, so a rejected call leaves the
// store untouched. The price supplied on the first successful add for an
// item is authoritative; later adds only grow the quantity.
func (r *Repository) AddItem(ctx context.Context, cartID, itemName string, price decimal.Decimal, quantity int) (decimal.Decimal, error) {
	item, err := cart.NewItem(itemName, price, quantity)
	if err != nil {
		return decimal.Decimal{}, err
	}

	c := r.getOrCreate(cartID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[itemName]; ok {
		existing.AddQuantity(quantity)
	} else {
		c.items[itemName] = &item
	}
	return c.total(), nil
}

// GetTotal returns the exact sum of all item subtotals in the cart.
func (r *Repository) GetTotal(ctx context.Context, cartID string) (decimal.Decimal, error) {
	r.mu.RLock()
	c, ok := r.carts[cartID]
	r.mu.RUnlock()
	if !ok {
		return decimal.Decimal{}, cart.ErrNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total(), nil
}

// Items returns a snapshot of the cart's contents. Returned items are
// copies; callers never alias store-owned state.
func (r *Repository) Items(ctx context.Context, cartID string) ([]cart.Item, error) {
	r.mu.RLock()
	c, ok := r.carts[cartID]
	r.mu.RUnlock()
	if !ok {
		return nil, cart.ErrNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]cart.Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, *it)
	}
	return out, nil
}

// getOrCreate returns the entry for cartID, registering exactly one entry
// per id even when first access races.
func (r *Repository) getOrCreate(cartID string) *cartEntry {
	r.mu.RLock()
	c, ok := r.carts[cartID]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[cartID]; ok {
		return c
	}
	c = &cartEntry{items: make(map[string]*cart.Item)}
	r.carts[cartID] = c
	return c
}

// total sums the subtotals of all items. The caller must hold the entry
// lock.
func (c *cartEntry) total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}
