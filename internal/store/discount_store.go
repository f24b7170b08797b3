package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sanket-kogekar/uniblox-server/internal/domain"
)

const codePrefix = "DISCOUNT"

// codeRandomLength is how many random characters follow the prefix.
// 12 hex characters give a 16^12 code space, so collisions are negligible
// (and retried regardless).
const codeRandomLength = 12

// DiscountStore implements DiscountCodes with in-memory storage
type DiscountStore struct {
	mu    sync.RWMutex
	codes map[string]*domain.DiscountCode

	// order of insertion, so listings are stable
	minted []string

	now func() time.Time
}

// NewDiscountStore creates a new in-memory discount code registry
func NewDiscountStore() *DiscountStore {
	return &DiscountStore{
		codes: make(map[string]*domain.DiscountCode),
		now:   time.Now,
	}
}

func newCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return codePrefix + raw[:codeRandomLength]
}

// Generate mints a new unused code, retrying on identifier collision
func (s *DiscountStore) Generate(percentage decimal.Decimal, expiryDays int) (*domain.DiscountCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := newCode()
	for {
		if _, exists := s.codes[code]; !exists {
			break
		}
		code = newCode()
	}

	now := s.now().UTC()
	dc := &domain.DiscountCode{
		Code:               code,
		DiscountPercentage: percentage,
		IsUsed:             false,
		CreatedAt:          now,
		ExpiresAt:          now.AddDate(0, 0, expiryDays),
	}
	s.codes[code] = dc
	s.minted = append(s.minted, code)

	out := *dc
	return &out, nil
}

// Validate looks the code up without mutating it
func (s *DiscountStore) Validate(code string) (*domain.DiscountCode, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrInvalidCode
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dc, exists := s.codes[code]
	if !exists {
		return nil, ErrCodeNotFound
	}
	if dc.IsUsed {
		return nil, ErrCodeAlreadyUsed
	}
	if dc.IsExpired(s.now()) {
		return nil, ErrCodeExpired
	}

	out := *dc
	return &out, nil
}

// Redeem re-validates the code and marks it used in one critical section.
// Two concurrent redemptions of the same code see exactly one success and
// one ErrCodeAlreadyUsed.
func (s *DiscountStore) Redeem(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrInvalidCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dc, exists := s.codes[code]
	if !exists {
		return ErrCodeNotFound
	}
	if dc.IsUsed {
		return ErrCodeAlreadyUsed
	}
	if dc.IsExpired(s.now()) {
		return ErrCodeExpired
	}

	usedAt := s.now().UTC()
	dc.IsUsed = true
	dc.UsedAt = &usedAt
	return nil
}

// ListAll returns snapshots of every code ever minted, oldest first
func (s *DiscountStore) ListAll() []*domain.DiscountCode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.DiscountCode, 0, len(s.minted))
	for _, code := range s.minted {
		dc := *s.codes[code]
		out = append(out, &dc)
	}
	return out
}

// CountValid returns how many codes are currently redeemable
func (s *DiscountStore) CountValid() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	count := 0
	for _, dc := range s.codes {
		if dc.IsValid(now) {
			count++
		}
	}
	return count
}
