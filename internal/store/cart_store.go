package store

import (
	"strings"
	"sync"

	"github.com/sanket-kogekar/uniblox-server/internal/domain"
)

// CartStore implements Carts with in-memory storage. The outer lock only
// guards the map of entries; every entry carries its own mutex, so
// operations for different users proceed concurrently while all mutations
// for one user are serialized.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*cartEntry

	// maxItems caps the number of distinct line entries per cart;
	// 0 means no cap
	maxItems int
}

type cartEntry struct {
	mu   sync.Mutex
	cart *domain.Cart
}

// NewCartStore creates a new in-memory cart store. maxItems caps the
// distinct line entries per cart; pass 0 for no cap.
func NewCartStore(maxItems int) *CartStore {
	return &CartStore{
		carts:    make(map[string]*cartEntry),
		maxItems: maxItems,
	}
}

// entry returns the user's cart entry, creating it under the map lock on
// first access so a read-miss cannot race with creation.
func (s *CartStore) entry(userID string) *cartEntry {
	s.mu.RLock()
	e, exists := s.carts[userID]
	s.mu.RUnlock()
	if exists {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, exists = s.carts[userID]; exists {
		return e
	}
	e = &cartEntry{cart: domain.NewCart(userID)}
	s.carts[userID] = e
	return e
}

// AddItem adds an item to the user's cart, consolidating by item id
func (s *CartStore) AddItem(userID string, item domain.Item) (*domain.Cart, error) {
	if strings.TrimSpace(item.ItemID) == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
		return nil, ErrInvalidItem
	}

	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	// The cap is checked under the entry lock, so concurrent adds of
	// distinct items cannot slip past it. Consolidating adds for an
	// existing entry are always allowed.
	if s.maxItems > 0 && len(e.cart.Items) >= s.maxItems && !e.cart.HasItem(item.ItemID) {
		return nil, ErrCartFull
	}

	e.cart.AddItem(item)
	return copyCart(e.cart), nil
}

// RemoveItem deletes a line entry from the user's cart
func (s *CartStore) RemoveItem(userID, itemID string) (*domain.Cart, error) {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cart.RemoveItem(itemID) {
		return nil, ErrItemNotInCart
	}
	return copyCart(e.cart), nil
}

// Get returns a snapshot of the user's cart, creating an empty one on
// first access
func (s *CartStore) Get(userID string) *domain.Cart {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	return copyCart(e.cart)
}

// Clear empties the user's cart
func (s *CartStore) Clear(userID string) {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart.Clear()
}

// WithCart runs fn with the user's cart lock held. fn receives the live
// cart and may mutate it; if fn returns an error the cart keeps whatever
// state fn left it in, so fn must only mutate on its success path.
func (s *CartStore) WithCart(userID string, fn func(cart *domain.Cart) error) error {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.cart)
}

// copyCart returns a deep enough copy that callers can read it without
// holding the entry lock.
func copyCart(c *domain.Cart) *domain.Cart {
	out := *c
	out.Items = append([]domain.Item(nil), c.Items...)
	return &out
}
