package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Cart is a user's mutable collection of pending line items.
// One line entry exists per item id; adding an existing id consolidates
// into the entry's quantity instead of appending a duplicate.
type Cart struct {
	UserID    string    `json:"user_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCart(userID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		UserID:    userID,
		Items:     nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem consolidates by item id: an existing entry gets the new quantity
// added on top, with name and unit price taken from the latest add.
func (c *Cart) AddItem(item Item) {
	if existing := c.findItem(item.ItemID); existing != nil {
		existing.Quantity += item.Quantity
		existing.Name = item.Name
		existing.UnitPrice = item.UnitPrice
	} else {
		c.Items = append(c.Items, item)
	}
	c.UpdatedAt = time.Now().UTC()
}

// RemoveItem deletes the entry with the given item id.
// Returns false if the cart has no such entry.
func (c *Cart) RemoveItem(itemID string) bool {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// HasItem reports whether the cart holds a line entry for the item id.
func (c *Cart) HasItem(itemID string) bool {
	return c.findItem(itemID) != nil
}

func (c *Cart) findItem(itemID string) *Item {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// TotalAmount is the sum of the line subtotals.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount is the total quantity across all line entries.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now().UTC()
}

// MarshalJSON includes the derived total_items and total_amount the cart
// reports alongside its line entries.
func (c Cart) MarshalJSON() ([]byte, error) {
	type alias Cart
	return json.Marshal(struct {
		alias
		TotalItems  int             `json:"total_items"`
		TotalAmount decimal.Decimal `json:"total_amount"`
	}{alias(c), c.ItemCount(), c.TotalAmount()})
}
