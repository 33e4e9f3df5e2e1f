// Package cart holds the state of one order while it is being composed: the line items
// in the order they were first added and whether the order has been confirmed.
//
// A Cart is owned by a single caller and is not safe for concurrent use. Operations
// never fail; unknown ids are ignored.
package cart

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
)

type Cart struct {
	items     []LineItem
	confirmed bool
}

func New() *Cart {
	return &Cart{
		items: []LineItem{},
	}
}

// Restore rebuilds a cart from a stored snapshot. Lines with a quantity below 1 are
// dropped and lines sharing an id are merged into the first one.
func Restore(items []LineItem, confirmed bool) *Cart {
	c := New()
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if idx := c.indexOf(item.ID); idx >= 0 {
			c.items[idx].Quantity = addQuantity(c.items[idx].Quantity, item.Quantity)
			continue
		}
		c.items = append(c.items, item)
	}
	c.confirmed = confirmed
	return c
}

func (c *Cart) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of the product's line, or appends a new line with
// quantity 1.
func (c *Cart) AddItem(p catalog.Product) {
	if idx := c.indexOf(p.ID()); idx >= 0 {
		c.items[idx].Quantity = addQuantity(c.items[idx].Quantity, 1)
		return
	}
	c.items = append(c.items, newLineItem(p))
}

// ChangeQuantity adds delta to the quantity of a line. A line whose quantity would drop
// to zero or below is removed.
func (c *Cart) ChangeQuantity(id string, delta int) {
	idx := c.indexOf(id)
	if idx < 0 {
		return
	}

	newQuantity := addQuantity(c.items[idx].Quantity, delta)
	if newQuantity <= 0 {
		c.removeAt(idx)
		return
	}
	c.items[idx].Quantity = newQuantity
}

// addQuantity saturates at math.MaxInt. Quantities are at least 1, so a negative delta
// cannot wrap.
func addQuantity(quantity int, delta int) int {
	if delta > 0 && quantity > math.MaxInt-delta {
		return math.MaxInt
	}
	return quantity + delta
}

func (c *Cart) RemoveItem(id string) {
	if idx := c.indexOf(id); idx >= 0 {
		c.removeAt(idx)
	}
}

func (c *Cart) removeAt(idx int) {
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}

// Items returns a copy of the lines in display order.
func (c *Cart) Items() []LineItem {
	result := make([]LineItem, len(c.items))
	copy(result, c.items)
	return result
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) TotalItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) QuantityOf(id string) int {
	if idx := c.indexOf(id); idx >= 0 {
		return c.items[idx].Quantity
	}
	return 0
}

func (c *Cart) IsInCart(id string) bool {
	return c.QuantityOf(id) > 0
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) OrderConfirmed() bool {
	return c.confirmed
}

// ConfirmOrder expects a non-empty cart; callers check IsEmpty first.
func (c *Cart) ConfirmOrder() {
	c.confirmed = true
}

// DismissConfirmation closes the confirmation and keeps the lines for further editing.
func (c *Cart) DismissConfirmation() {
	c.confirmed = false
}

func (c *Cart) StartNewOrder() {
	*c = Cart{
		items:     []LineItem{},
		confirmed: false,
	}
}
