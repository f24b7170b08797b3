package store

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sanket-kogekar/uniblox-server/internal/domain"
)

// Common errors returned by the stores
var (
	ErrInvalidItem     = errors.New("item has an invalid id, price or quantity")
	ErrCartFull        = errors.New("cart has reached the maximum number of items")
	ErrItemNotInCart   = errors.New("item not found in cart")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidCode     = errors.New("discount code is malformed")
	ErrCodeNotFound    = errors.New("discount code not found")
	ErrCodeExpired     = errors.New("discount code has expired")
	ErrCodeAlreadyUsed = errors.New("discount code has already been used")
)

// Carts defines the interface for per-user cart storage.
type Carts interface {
	// AddItem adds an item to the user's cart, consolidating by item id,
	// and returns a snapshot of the updated cart
	AddItem(userID string, item domain.Item) (*domain.Cart, error)

	// RemoveItem deletes a line entry from the user's cart
	RemoveItem(userID, itemID string) (*domain.Cart, error)

	// Get returns a snapshot of the user's cart, creating an empty one
	// on first access
	Get(userID string) *domain.Cart

	// Clear empties the user's cart
	Clear(userID string)

	// WithCart runs fn with exclusive ownership of the user's cart.
	// No other mutation for the same user can interleave with fn.
	WithCart(userID string, fn func(cart *domain.Cart) error) error
}

// DiscountCodes defines the interface for the discount code registry.
type DiscountCodes interface {
	// Generate mints a new unused code with the given percentage and
	// expiry window in days
	Generate(percentage decimal.Decimal, expiryDays int) (*domain.DiscountCode, error)

	// Validate looks the code up without mutating it
	Validate(code string) (*domain.DiscountCode, error)

	// Redeem atomically re-validates the code and marks it used.
	// Exactly one of several concurrent Redeem calls for the same code
	// can succeed.
	Redeem(code string) error

	// ListAll returns snapshots of every code ever minted
	ListAll() []*domain.DiscountCode

	// CountValid returns how many codes are currently redeemable
	CountValid() int
}

// OrderTotals is a point-in-time aggregate over the order ledger.
type OrderTotals struct {
	TotalOrders   int
	TotalItems    int
	NetRevenue    decimal.Decimal
	TotalDiscount decimal.Decimal
}

// Orders defines the interface for the append-only order ledger.
type Orders interface {
	// Record appends an immutable order and returns it together with the
	// post-increment value of the global order counter
	Record(userID string, items []domain.Item, discountCode string, discountAmount decimal.Decimal) (*domain.Order, int, error)

	// Get returns the order with the given id
	Get(orderID string) (*domain.Order, error)

	// List returns all orders in insertion order
	List() []*domain.Order

	// ListByUser returns the user's orders in insertion order
	ListByUser(userID string) []*domain.Order

	// Totals returns aggregate figures across all orders
	Totals() OrderTotals
}
