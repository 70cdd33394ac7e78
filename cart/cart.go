// Package cart holds the client-session cart: the menu items a customer
// has picked plus quantities, with totals computed through the same
// pricing functions the server uses at checkout. The cart is owned by a
// single client session and is never persisted server-side.
package cart

import (
	"github.com/bellacucina/api/models"
	"github.com/bellacucina/api/pricing"
)

// Item is a menu item in the cart with the chosen quantity.
type Item struct {
	models.MenuItem
	Quantity int
}

type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty of the item in the cart, merging with an existing line for
// the same menu item. Non-positive quantities are ignored.
func (c *Cart) Add(item models.MenuItem, qty int) {
	if qty < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, Item{MenuItem: item, Quantity: qty})
}

func (c *Cart) Remove(menuItemID string) {
	for i := range c.items {
		if c.items[i].ID == menuItemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity for a line; a quantity below 1 removes
// the line, matching how the storefront cart behaves.
func (c *Cart) SetQuantity(menuItemID string, qty int) {
	if qty < 1 {
		c.Remove(menuItemID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == menuItemID {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// OrderItems converts the cart into checkout line items, snapshotting the
// current name and price of each menu item.
func (c *Cart) OrderItems() []models.OrderItem {
	res := make([]models.OrderItem, 0, len(c.items))
	for _, it := range c.items {
		res = append(res, models.OrderItem{
			MenuItemID: it.ID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}
	return res
}

func (c *Cart) Subtotal() float64 {
	return pricing.Subtotal(c.OrderItems())
}

func (c *Cart) Tax() float64 {
	return pricing.Tax(c.Subtotal())
}

func (c *Cart) Total() float64 {
	return pricing.Total(c.Subtotal(), c.Tax())
}
