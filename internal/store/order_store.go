package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sanket-kogekar/uniblox-server/internal/domain"
)

// OrderStore implements Orders with in-memory storage. The ledger is
// append-only; the global order counter is incremented under the same
// lock as the append, so counter values are distinct and gapless.
type OrderStore struct {
	mu      sync.Mutex
	orders  []*domain.Order
	byID    map[string]*domain.Order
	counter int
}

// NewOrderStore creates a new in-memory order ledger
func NewOrderStore() *OrderStore {
	return &OrderStore{
		byID: make(map[string]*domain.Order),
	}
}

// Record appends an immutable order built from a snapshot of the given
// items and returns it together with the post-increment counter value
func (s *OrderStore) Record(userID string, items []domain.Item, discountCode string, discountAmount decimal.Decimal) (*domain.Order, int, error) {
	snapshot := append([]domain.Item(nil), items...)

	subtotal := decimal.Zero
	for _, item := range snapshot {
		subtotal = subtotal.Add(item.Subtotal())
	}

	order := &domain.Order{
		OrderID:        uuid.New().String(),
		UserID:         userID,
		Items:          snapshot,
		Subtotal:       subtotal,
		DiscountCode:   discountCode,
		DiscountAmount: discountAmount,
		TotalAmount:    subtotal.Sub(discountAmount),
		CreatedAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	s.byID[order.OrderID] = order
	s.counter++
	return order, s.counter, nil
}

// Get returns the order with the given id
func (s *OrderStore) Get(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.byID[orderID]
	if !exists {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns all orders in insertion order
func (s *OrderStore) List() []*domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*domain.Order(nil), s.orders...)
}

// ListByUser returns the user's orders in insertion order
func (s *OrderStore) ListByUser(userID string) []*domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out
}

// Totals returns aggregate figures across all orders
func (s *OrderStore) Totals() OrderTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := OrderTotals{
		TotalOrders:   len(s.orders),
		NetRevenue:    decimal.Zero,
		TotalDiscount: decimal.Zero,
	}
	for _, order := range s.orders {
		totals.TotalItems += order.ItemCount()
		totals.NetRevenue = totals.NetRevenue.Add(order.TotalAmount)
		totals.TotalDiscount = totals.TotalDiscount.Add(order.DiscountAmount)
	}
	return totals
}
