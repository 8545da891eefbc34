package models

import "time"

// CartItem is one line of a cart: a product reference plus a denormalized
// snapshot of what the client saw when adding it.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	MRP       float64 `json:"mrp,omitempty"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Category  string  `json:"category,omitempty"`
}

// Cart is owned by exactly one of UserID (authenticated) or SessionID
// (anonymous browser session), never both.
type Cart struct {
	UserID     string     `json:"userId,omitempty"`
	SessionID  string     `json:"sessionId,omitempty"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt,omitempty"`
}

// Recompute rebuilds totalItems and totalPrice from the items list.
// Called before every persist; totals are never trusted from caller input.
func (c *Cart) Recompute() {
	c.TotalItems = 0
	c.TotalPrice = 0
	for _, item := range c.Items {
		c.TotalItems += item.Quantity
		c.TotalPrice += item.Price * float64(item.Quantity)
	}
}

// AddItem merges by product identity: an existing line gains +1 quantity,
// otherwise a new line is appended with quantity 1.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++
			c.Recompute()
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
	c.Recompute()
}

// RemoveItem drops the line matching productId. Removing an item that is
// not in the cart is a no-op.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.Recompute()
}

// SetQuantity sets the line quantity directly. Quantity 0 removes the line,
// same as RemoveItem. Negative quantities are rejected upstream.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity == 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.Recompute()
}

// Clear empties the items list; the cart record itself survives.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Recompute()
}
