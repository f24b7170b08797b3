package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sanket-kogekar/uniblox-server/internal/domain"
	"github.com/sanket-kogekar/uniblox-server/internal/service"
)

type OrdersHandler struct {
	orders *service.OrderService
}

func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimSpace(chi.URLParam(r, "orderID"))
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id cannot be empty")
		return
	}

	order, err := h.orders.GetOrder(orderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "invalid_user_id", "user_id cannot be empty")
		return
	}

	orders := h.orders.ListUserOrders(userID)
	if orders == nil {
		orders = []*domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}
