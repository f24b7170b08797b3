package service

import (
	"github.com/sanket-kogekar/uniblox-server/internal/domain"
	"github.com/sanket-kogekar/uniblox-server/internal/store"
)

// OrderService exposes read access to the order ledger. Orders are only
// ever written by the checkout flow.
type OrderService struct {
	orders store.Orders
}

func NewOrderService(orders store.Orders) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) GetOrder(orderID string) (*domain.Order, error) {
	return s.orders.Get(orderID)
}

func (s *OrderService) ListUserOrders(userID string) []*domain.Order {
	return s.orders.ListByUser(userID)
}
