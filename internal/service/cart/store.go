package cart

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"walk4you-storefront/internal/domain"
)

// MsgInsufficientStock is the localized message shown when the backend
// refuses a cart mutation for lack of stock.
const MsgInsufficientStock = "สินค้ามีไม่เพียงพอ กรุณาลดจำนวนลง"

// stockDetailMarker is the substring of the backend's error detail that
// identifies a stock shortage.
const stockDetailMarker = "Insufficient quantity"

type cartAPI interface {
	Cart(ctx context.Context) (*domain.Cart, error)
	AddCartItem(ctx context.Context, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, itemID string) error
	ClearCart(ctx context.Context) error
}

// Store is the single source of truth for "what is the user's cart right
// now". Every successful mutation re-fetches the cart wholesale; nothing is
// mutated optimistically. Concurrent operations are not serialized: if two
// mutations overlap, the refresh that lands last wins. The server remains
// the source of truth, so a later refresh reconciles the display.
type Store struct {
	api    cartAPI
	logger *log.Logger

	mu      sync.Mutex
	cart    *domain.Cart
	lastErr error
	loading bool
}

// NewStore builds a Store over the backend cart API.
func NewStore(api cartAPI, logger *log.Logger) *Store {
	return &Store{api: api, logger: logger}
}

// Cart returns the most recently fetched cart, or nil when none is held
// (logged out, or never refreshed).
func (s *Store) Cart() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Err returns the retained error from the last failed operation, or nil.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Loading reports whether any cart operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Refresh replaces the held cart with the server's current state.
//
// No credential means no cart, not an error. An unauthorized response is
// treated the same way. Any other failure is retained as the error state
// and the previously held cart is kept; stale-but-present beats blanking.
func (s *Store) Refresh(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)
	return s.refreshLocked(ctx)
}

// AddItem adds quantity units of a product to the cart and refreshes on
// success. The backend performs the stock check; its shortage message is
// remapped to the localized one.
func (s *Store) AddItem(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be positive")
	}
	return s.mutate(ctx, "add to cart", func() error {
		return s.api.AddCartItem(ctx, productID, quantity)
	})
}

// UpdateItem proposes a new quantity for a cart line and refreshes on
// success. Quantities below 1 are silently ignored; no request is issued.
func (s *Store) UpdateItem(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	return s.mutate(ctx, "update cart item", func() error {
		return s.api.UpdateCartItem(ctx, itemID, quantity)
	})
}

// RemoveItem removes one cart line unconditionally and refreshes on success.
func (s *Store) RemoveItem(ctx context.Context, itemID string) error {
	return s.mutate(ctx, "remove from cart", func() error {
		return s.api.RemoveCartItem(ctx, itemID)
	})
}

// Clear removes every cart line and refreshes on success.
func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, "clear cart", func() error {
		return s.api.ClearCart(ctx)
	})
}

// mutate runs one cart mutation, retains its failure for readers, and
// returns it to the caller so the invoking screen can show a contextual
// alert. On success the held cart is re-fetched.
func (s *Store) mutate(ctx context.Context, op string, call func() error) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := call(); err != nil {
		err = remapStockError(err)
		s.logger.Printf("%s: %v", op, err)
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	return s.refreshLocked(ctx)
}

// refreshLocked is Refresh without the loading toggle, for use inside an
// operation that already holds it.
func (s *Store) refreshLocked(ctx context.Context) error {
	cart, err := s.api.Cart(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.cart = cart
		s.lastErr = nil
	case errors.Is(err, domain.ErrNoCredential), errors.Is(err, domain.ErrUnauthorized):
		s.cart = nil
		s.lastErr = nil
	default:
		s.logger.Printf("refresh cart: %v", err)
		s.lastErr = err
		return err
	}
	return nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// localizedError replaces a backend message with a user-facing one while
// staying matchable via errors.Is.
type localizedError struct {
	msg  string
	kind error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.kind }

// remapStockError recognizes the backend's stock-shortage detail by
// substring and substitutes the localized message. Every other error passes
// through with the server's message verbatim.
func remapStockError(err error) error {
	if strings.Contains(err.Error(), stockDetailMarker) {
		return &localizedError{msg: MsgInsufficientStock, kind: domain.ErrInsufficientStock}
	}
	return err
}
