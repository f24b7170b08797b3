package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the immutable record of a completed purchase. Orders are
// append-only: once recorded they are never mutated or deleted.
type Order struct {
	OrderID        string          `json:"order_id"`
	UserID         string          `json:"user_id"`
	Items          []Item          `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountCode   string          `json:"discount_code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ItemCount is the total quantity across the order's line entries.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
