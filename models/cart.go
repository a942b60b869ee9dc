package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("Informe uma quantidade válida.")

// LineItem is one product entry in the cart, keyed by product name.
type LineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds the line items of the sale in progress, in insertion order.
// No two lines share a name; quantities are always positive.
type Cart struct {
	items []LineItem
}

// AddItem puts quantity units of a product into the cart. A product already
// present is merged: quantities are summed and the unit price is overwritten
// with the incoming one. Returns the updated snapshot.
func (c *Cart) AddItem(name string, unitPrice decimal.Decimal, quantity int) ([]LineItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Quantity += quantity
			c.items[i].UnitPrice = unitPrice
			return c.Items(), nil
		}
	}

	c.items = append(c.items, LineItem{Name: name, UnitPrice: unitPrice, Quantity: quantity})
	return c.Items(), nil
}

// RemoveItem drops the line at the given display position. An index outside
// the cart is a no-op: the only legitimate caller is a row-removal action on
// the last rendered snapshot.
func (c *Cart) RemoveItem(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() { c.items = nil }

func (c *Cart) Len() int { return len(c.items) }

// Items returns a copy of the current lines in display order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums unit price times quantity over all lines. Exact decimal
// arithmetic, so repeated additions never drift.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.LineTotal())
	}
	return total
}
