package service

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sanket-kogekar/uniblox-server/internal/config"
	"github.com/sanket-kogekar/uniblox-server/internal/domain"
	"github.com/sanket-kogekar/uniblox-server/internal/store"
)

// CheckoutService converts a user's cart into an immutable order,
// optionally redeeming a discount code, and mints a fresh code after
// every N-th completed order.
type CheckoutService struct {
	carts  store.Carts
	codes  store.DiscountCodes
	orders store.Orders
	cfg    config.Discount
}

func NewCheckoutService(carts store.Carts, codes store.DiscountCodes, orders store.Orders, cfg config.Discount) *CheckoutService {
	return &CheckoutService{
		carts:  carts,
		codes:  codes,
		orders: orders,
		cfg:    cfg,
	}
}

// Checkout is all-or-nothing: a failure at any step leaves the cart, the
// code registry and the order ledger exactly as they were. The whole call
// runs inside the user's cart critical section, so two checkouts for the
// same user cannot interleave.
func (s *CheckoutService) Checkout(userID, discountCode string) (*domain.Order, error) {
	var order *domain.Order

	err := s.carts.WithCart(userID, func(cart *domain.Cart) error {
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		discountCode = strings.TrimSpace(discountCode)
		discountAmount := decimal.Zero

		if discountCode != "" {
			code, err := s.codes.Validate(discountCode)
			if err != nil {
				log.Warn().Err(err).Str("user_id", userID).Str("discount_code", discountCode).Msg("checkout rejected discount code")
				return err
			}
			discountAmount = code.DiscountAmount(cart.TotalAmount())

			// Atomic claim: a concurrent checkout racing on the same code
			// loses here with ErrCodeAlreadyUsed, before anything mutates.
			if err := s.codes.Redeem(discountCode); err != nil {
				log.Warn().Err(err).Str("user_id", userID).Str("discount_code", discountCode).Msg("checkout lost discount code race")
				return err
			}
		}

		var count int
		var err error
		order, count, err = s.orders.Record(userID, cart.Items, discountCode, discountAmount)
		if err != nil {
			return err
		}

		cart.Clear()

		log.Info().
			Str("order_id", order.OrderID).
			Str("user_id", userID).
			Str("total_amount", order.TotalAmount.String()).
			Int("order_count", count).
			Msg("order placed")

		if count%s.cfg.OrderFrequency == 0 {
			minted, err := s.codes.Generate(s.cfg.Percentage, s.cfg.ExpiryDays)
			if err != nil {
				// Minting is a side reward for the N-th order, never a
				// reason to fail an already recorded checkout.
				log.Error().Err(err).Int("order_count", count).Msg("failed to mint discount code")
			} else {
				log.Info().Str("code", minted.Code).Int("order_count", count).Msg("discount code minted")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
