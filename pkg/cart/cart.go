// Package cart defines the shopping cart domain: items, validation rules,
// and the repository contract for mutating carts.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates no cart exists for the requested id.
var ErrNotFound = errors.New("cart not found")

// ErrInvalidArgument indicates a rejected price or quantity.
var ErrInvalidArgument = errors.New("invalid argument")

// Item represents a single product line in a cart. Name and UnitPrice are
// fixed at creation; only Quantity grows afterwards. The first add of an
// item fixes its price — later adds of the same item change quantity only.
type Item struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Quantity  int             `json:"quantity"`
}

// NewItem validates and builds an item. The price must be non-negative and
// the quantity strictly positive.
func NewItem(name string, price decimal.Decimal, quantity int) (Item, error) {
	if price.IsNegative() {
		return Item{}, fmt.Errorf("%w: price must be non-negative, got %s", ErrInvalidArgument, price)
	}
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: quantity must be greater than zero, got %d", ErrInvalidArgument, quantity)
	}
	return Item{Name: name, UnitPrice: price, Quantity: quantity}, nil
}

// AddQuantity increases the quantity by amount. Non-positive amounts are
// silently ignored; merges into an existing line are lenient by contract.
func (i *Item) AddQuantity(amount int) {
	if amount > 0 {
		i.Quantity += amount
	}
}

// Subtotal returns unit price times quantity as an exact decimal.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Repository defines behavior for mutating and reading carts.
type Repository interface {
	// AddItem adds quantity units of the named item to the cart, creating
	// the cart and the item as needed, and returns the cart's new total.
	AddItem(ctx context.Context, cartID, itemName string, price decimal.Decimal, quantity int) (decimal.Decimal, error)
	// GetTotal returns the exact sum of all item subtotals in the cart.
	GetTotal(ctx context.Context, cartID string) (decimal.Decimal, error)
	// Items returns a snapshot of the cart's contents.
	Items(ctx context.Context, cartID string) ([]Item, error)
}
