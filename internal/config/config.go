package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Discount holds the parameters driving code generation and redemption.
type Discount struct {
	// OrderFrequency mints a new code after every N-th completed order
	OrderFrequency int
	// Percentage applied by generated codes, 0..100
	Percentage decimal.Decimal
	// ExpiryDays is the validity window of a freshly minted code
	ExpiryDays int
}

// Cart holds the request-boundary limits for cart mutations.
type Cart struct {
	MaxItemsPerCart    int
	MaxQuantityPerItem int
}

type Config struct {
	HTTPPort        string
	ShutdownTimeout time.Duration
	Discount        Discount
	Cart            Cart
}

// Load reads configuration from the environment, optionally merging a
// .env file first. A missing .env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ShutdownTimeout: 10 * time.Second,
	}

	var err error
	if cfg.Discount.OrderFrequency, err = getEnvInt("DISCOUNT_ORDER_FREQUENCY", 3); err != nil {
		return nil, err
	}
	if cfg.Discount.ExpiryDays, err = getEnvInt("DISCOUNT_CODE_EXPIRY_DAYS", 30); err != nil {
		return nil, err
	}
	if cfg.Discount.Percentage, err = getEnvDecimal("DISCOUNT_PERCENTAGE", "10.0"); err != nil {
		return nil, err
	}
	if cfg.Cart.MaxItemsPerCart, err = getEnvInt("MAX_ITEMS_PER_CART", 100); err != nil {
		return nil, err
	}
	if cfg.Cart.MaxQuantityPerItem, err = getEnvInt("MAX_QUANTITY_PER_ITEM", 10); err != nil {
		return nil, err
	}

	if cfg.Discount.OrderFrequency <= 0 {
		return nil, fmt.Errorf("DISCOUNT_ORDER_FREQUENCY must be positive, got %d", cfg.Discount.OrderFrequency)
	}
	if cfg.Discount.ExpiryDays <= 0 {
		return nil, fmt.Errorf("DISCOUNT_CODE_EXPIRY_DAYS must be positive, got %d", cfg.Discount.ExpiryDays)
	}
	if cfg.Discount.Percentage.IsNegative() || cfg.Discount.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("DISCOUNT_PERCENTAGE must be between 0 and 100, got %s", cfg.Discount.Percentage)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnvDecimal(key, defaultValue string) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal number: %w", key, err)
	}
	return parsed, nil
}
