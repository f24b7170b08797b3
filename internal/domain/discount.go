package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountCode is a single-use, time-limited token reducing an order's
// total by a fixed percentage. Codes are never deleted; a used code stays
// in the registry for auditing.
type DiscountCode struct {
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsUsed             bool            `json:"is_used"`
	CreatedAt          time.Time       `json:"created_at"`
	UsedAt             *time.Time      `json:"used_at,omitempty"`
	ExpiresAt          time.Time       `json:"expires_at"`
}

// IsExpired reports whether the code's expiry window has passed at now.
// The code is only valid strictly before ExpiresAt.
func (d *DiscountCode) IsExpired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}

// IsValid reports whether the code is unused and not expired at now.
func (d *DiscountCode) IsValid(now time.Time) bool {
	return !d.IsUsed && !d.IsExpired(now)
}

// DiscountAmount applies the code's percentage to the given subtotal,
// rounded to two decimal places.
func (d *DiscountCode) DiscountAmount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(d.DiscountPercentage).Div(decimal.NewFromInt(100)).Round(2)
}
