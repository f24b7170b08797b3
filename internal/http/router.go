package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type HealthResponseDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRouter wires all handlers into the HTTP surface of the store.
func NewRouter(cart *CartHandler, checkout *CheckoutHandler, orders *OrdersHandler, admin *AdminHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponseDTO{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	r.Route("/cart/{userID}", func(r chi.Router) {
		r.Get("/", cart.GetCart)
		r.Post("/items", cart.AddItem)
		r.Delete("/items/{itemID}", cart.RemoveItem)
		r.Post("/checkout", checkout.Checkout)
	})

	r.Get("/orders/{orderID}", orders.GetOrder)
	r.Get("/users/{userID}/orders", orders.ListUserOrders)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/discount-codes", admin.GenerateDiscountCode)
		r.Get("/discount-codes", admin.ListDiscountCodes)
		r.Get("/stats", admin.GetStats)
		r.Get("/orders", admin.ListOrders)
	})

	return r
}
