package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sanket-kogekar/uniblox-server/internal/config"
	"github.com/sanket-kogekar/uniblox-server/internal/domain"
	"github.com/sanket-kogekar/uniblox-server/internal/service"
)

type CartHandler struct {
	carts  *service.CartService
	limits config.Cart
}

func NewCartHandler(carts *service.CartService, limits config.Cart) *CartHandler {
	return &CartHandler{
		carts:  carts,
		limits: limits,
	}
}

type AddItemRequestDTO struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartResponseDTO struct {
	Message string       `json:"message,omitempty"`
	Cart    *domain.Cart `json:"cart"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "invalid_user_id", "user_id cannot be empty")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.ItemID) == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id must be a non-empty string")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must be a non-empty string")
		return
	}
	if req.Price.IsNegative() {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must be a non-negative number")
		return
	}
	if req.Quantity <= 0 || req.Quantity > h.limits.MaxQuantityPerItem {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity is out of range")
		return
	}

	cart, err := h.carts.AddItem(userID, domain.Item{
		ItemID:    req.ItemID,
		Name:      req.Name,
		UnitPrice: req.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Message: "Item added to cart successfully",
		Cart:    cart,
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "invalid_user_id", "user_id cannot be empty")
		return
	}

	respondJSON(w, http.StatusOK, h.carts.GetCart(userID))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	itemID := strings.TrimSpace(chi.URLParam(r, "itemID"))
	if userID == "" || itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "user_id and item_id cannot be empty")
		return
	}

	cart, err := h.carts.RemoveItem(userID, itemID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Message: "Item removed from cart successfully",
		Cart:    cart,
	})
}
