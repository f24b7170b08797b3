package store

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tenPercent = decimal.NewFromInt(10)

func TestDiscountStore_Generate(t *testing.T) {
	store := NewDiscountStore()

	code, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code.Code, "DISCOUNT"))
	assert.Len(t, code.Code, len("DISCOUNT")+codeRandomLength)
	assert.False(t, code.IsUsed)
	assert.Nil(t, code.UsedAt)
	assert.True(t, code.DiscountPercentage.Equal(tenPercent))
	assert.True(t, code.ExpiresAt.After(time.Now()))
}

func TestDiscountStore_Generate_UniqueCodes(t *testing.T) {
	store := NewDiscountStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := store.Generate(tenPercent, 30)
		require.NoError(t, err)
		assert.False(t, seen[code.Code], "duplicate code %s", code.Code)
		seen[code.Code] = true
	}
}

func TestDiscountStore_Validate(t *testing.T) {
	store := NewDiscountStore()
	code, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)

	found, err := store.Validate(code.Code)
	require.NoError(t, err)
	assert.Equal(t, code.Code, found.Code)

	_, err = store.Validate("DISCOUNTDOESNOTEXIST")
	assert.ErrorIs(t, err, ErrCodeNotFound)

	_, err = store.Validate("   ")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestDiscountStore_Validate_Expired(t *testing.T) {
	store := NewDiscountStore()
	code, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().AddDate(0, 0, 31) }

	_, err = store.Validate(code.Code)
	assert.ErrorIs(t, err, ErrCodeExpired)
	assert.Equal(t, 0, store.CountValid())
}

func TestDiscountStore_Redeem(t *testing.T) {
	store := NewDiscountStore()
	code, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)

	require.NoError(t, store.Redeem(code.Code))

	// one-way transition: a second redemption fails
	assert.ErrorIs(t, store.Redeem(code.Code), ErrCodeAlreadyUsed)
	_, err = store.Validate(code.Code)
	assert.ErrorIs(t, err, ErrCodeAlreadyUsed)

	// the used code stays listed for auditing
	all := store.ListAll()
	require.Len(t, all, 1)
	assert.True(t, all[0].IsUsed)
	require.NotNil(t, all[0].UsedAt)
}

func TestDiscountStore_Redeem_Expired(t *testing.T) {
	store := NewDiscountStore()
	code, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().AddDate(0, 0, 31) }

	assert.ErrorIs(t, store.Redeem(code.Code), ErrCodeExpired)
}

func TestDiscountStore_Redeem_ConcurrentSingleUse(t *testing.T) {
	store := NewDiscountStore()
	code, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)

	const goroutines = 20
	errs := make(chan error, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			errs <- store.Redeem(code.Code)
		}()
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrCodeAlreadyUsed)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestDiscountStore_CountValid(t *testing.T) {
	store := NewDiscountStore()

	first, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)
	_, err = store.Generate(tenPercent, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, store.CountValid())

	require.NoError(t, store.Redeem(first.Code))
	assert.Equal(t, 1, store.CountValid())
}

func TestDiscountStore_ListAll_InsertionOrder(t *testing.T) {
	store := NewDiscountStore()

	first, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)
	second, err := store.Generate(tenPercent, 30)
	require.NoError(t, err)

	all := store.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, first.Code, all[0].Code)
	assert.Equal(t, second.Code, all[1].Code)
}
