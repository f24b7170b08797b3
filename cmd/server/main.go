package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sanket-kogekar/uniblox-server/internal/config"
	h "github.com/sanket-kogekar/uniblox-server/internal/http"
	"github.com/sanket-kogekar/uniblox-server/internal/service"
	"github.com/sanket-kogekar/uniblox-server/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "store-api").Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	carts := store.NewCartStore(cfg.Cart.MaxItemsPerCart)
	codes := store.NewDiscountStore()
	orders := store.NewOrderStore()

	cartService := service.NewCartService(carts)
	orderService := service.NewOrderService(orders)
	checkoutService := service.NewCheckoutService(carts, codes, orders, cfg.Discount)
	discountService := service.NewDiscountService(codes, cfg.Discount)
	adminService := service.NewAdminService(orders, codes)

	router := h.NewRouter(
		h.NewCartHandler(cartService, cfg.Cart),
		h.NewCheckoutHandler(checkoutService),
		h.NewOrdersHandler(orderService),
		h.NewAdminHandler(discountService, adminService),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Int("discount_order_frequency", cfg.Discount.OrderFrequency).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
