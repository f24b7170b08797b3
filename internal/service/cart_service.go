package service

import (
	"github.com/rs/zerolog/log"

	"github.com/sanket-kogekar/uniblox-server/internal/domain"
	"github.com/sanket-kogekar/uniblox-server/internal/store"
)

// CartService manages a user's pending line items.
type CartService struct {
	carts store.Carts
}

func NewCartService(carts store.Carts) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) AddItem(userID string, item domain.Item) (*domain.Cart, error) {
	cart, err := s.carts.AddItem(userID, item)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Str("item_id", item.ItemID).Msg("rejected cart item")
		return nil, err
	}

	log.Info().Str("user_id", userID).Str("item_id", item.ItemID).Int("quantity", item.Quantity).Msg("item added to cart")
	return cart, nil
}

func (s *CartService) GetCart(userID string) *domain.Cart {
	return s.carts.Get(userID)
}

func (s *CartService) RemoveItem(userID, itemID string) (*domain.Cart, error) {
	cart, err := s.carts.RemoveItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", userID).Str("item_id", itemID).Msg("item removed from cart")
	return cart, nil
}

func (s *CartService) ClearCart(userID string) {
	s.carts.Clear(userID)
	log.Info().Str("user_id", userID).Msg("cart cleared")
}
