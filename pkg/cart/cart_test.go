package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewItem(t *testing.T) {
	it, err := NewItem("Book", decimal.RequireFromString("120.50"), 2)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	if it.Name != "Book" || it.Quantity != 2 {
		t.Fatalf("unexpected item: %+v", it)
	}
	if !it.UnitPrice.Equal(decimal.RequireFromString("120.50")) {
		t.Fatalf("unexpected price: %s", it.UnitPrice)
	}
}

func TestNewItemZeroPriceAllowed(t *testing.T) {
	if _, err := NewItem("Freebie", decimal.Zero, 1); err != nil {
		t.Fatalf("zero price should be valid: %v", err)
	}
}

func TestNewItemRejectsNegativePrice(t *testing.T) {
	_, err := NewItem("Book", decimal.RequireFromString("-0.01"), 1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewItemRejectsNonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		_, err := NewItem("Book", decimal.NewFromInt(1), qty)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("qty=%d: expected ErrInvalidArgument, got %v", qty, err)
		}
	}
}

func TestAddQuantityIgnoresNonPositive(t *testing.T) {
	it, err := NewItem("Pen", decimal.NewFromInt(1), 3)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	it.AddQuantity(0)
	it.AddQuantity(-5)
	if it.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", it.Quantity)
	}
	it.AddQuantity(4)
	if it.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", it.Quantity)
	}
}

func TestSubtotalExactDecimal(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30; binary floating point would drift.
	it, err := NewItem("Gum", decimal.RequireFromString("0.10"), 3)
	if err != nil {
		t.Fatalf("new item: %v", err)
	}
	if want := decimal.RequireFromString("0.30"); !it.Subtotal().Equal(want) {
		t.Fatalf("expected %s, got %s", want, it.Subtotal())
	}
}
