package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/shopspring/decimal"

	"walk4you-storefront/internal/domain"
)

type stubAPI struct {
	cart     *domain.Cart
	cartErr  error
	cartGets int

	addErr     error
	addCalls   int
	lastAddID  string
	lastAddQty int

	updateErr     error
	updateCalls   int
	lastUpdateID  string
	lastUpdateQty int

	removeErr    error
	removeCalls  int
	lastRemoveID string

	clearErr   error
	clearCalls int
}

func (s *stubAPI) Cart(_ context.Context) (*domain.Cart, error) {
	s.cartGets++
	if s.cartErr != nil {
		return nil, s.cartErr
	}
	return s.cart, nil
}

func (s *stubAPI) AddCartItem(_ context.Context, productID string, quantity int) error {
	s.addCalls++
	s.lastAddID = productID
	s.lastAddQty = quantity
	return s.addErr
}

func (s *stubAPI) UpdateCartItem(_ context.Context, itemID string, quantity int) error {
	s.updateCalls++
	s.lastUpdateID = itemID
	s.lastUpdateQty = quantity
	return s.updateErr
}

func (s *stubAPI) RemoveCartItem(_ context.Context, itemID string) error {
	s.removeCalls++
	s.lastRemoveID = itemID
	return s.removeErr
}

func (s *stubAPI) ClearCart(_ context.Context) error {
	s.clearCalls++
	return s.clearErr
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testCart() *domain.Cart {
	return &domain.Cart{
		ID:          "cart-1",
		UserID:      "u1",
		Items:       twoStoreLines(),
		TotalItems:  2,
		TotalAmount: decimal.NewFromInt(250),
	}
}

func TestRefreshNoCredential(t *testing.T) {
	api := &stubAPI{cartErr: domain.ErrNoCredential}
	store := NewStore(api, testLogger())

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("no credential must not be an error, got %v", err)
	}
	if store.Cart() != nil {
		t.Fatalf("expected no cart without a credential")
	}
	if store.Err() != nil {
		t.Fatalf("expected no retained error, got %v", store.Err())
	}
}

func TestRefreshUnauthorizedTreatedAsLoggedOut(t *testing.T) {
	api := &stubAPI{cart: testCart()}
	store := NewStore(api, testLogger())
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	api.cartErr = domain.ErrUnauthorized
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("unauthorized must not be an error, got %v", err)
	}
	if store.Cart() != nil {
		t.Fatalf("expected cart cleared on unauthorized")
	}
	if store.Err() != nil {
		t.Fatalf("expected no retained error, got %v", store.Err())
	}
}

func TestRefreshFailureRetainsPreviousCart(t *testing.T) {
	api := &stubAPI{cart: testCart()}
	store := NewStore(api, testLogger())
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	api.cartErr = errors.New("backend down")
	if err := store.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	if store.Cart() == nil {
		t.Fatalf("stale cart must be retained over blanking")
	}
	if store.Err() == nil {
		t.Fatalf("expected retained error state")
	}
}

func TestRefreshSuccessClearsError(t *testing.T) {
	api := &stubAPI{cartErr: errors.New("backend down")}
	store := NewStore(api, testLogger())
	_ = store.Refresh(context.Background())

	api.cartErr = nil
	api.cart = testCart()
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Err() != nil {
		t.Fatalf("expected error cleared after successful refresh")
	}
	if store.Cart() == nil || store.Cart().ID != "cart-1" {
		t.Fatalf("expected fresh cart held")
	}
}

func TestAddItemTriggersRefresh(t *testing.T) {
	api := &stubAPI{cart: testCart()}
	store := NewStore(api, testLogger())

	if err := store.AddItem(context.Background(), "p-9", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.addCalls != 1 || api.lastAddID != "p-9" || api.lastAddQty != 3 {
		t.Fatalf("unexpected add call: %+v", api)
	}
	if api.cartGets != 1 {
		t.Fatalf("expected one refresh after add, got %d", api.cartGets)
	}
	if store.Cart() == nil {
		t.Fatalf("expected cart held after refresh")
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	api := &stubAPI{}
	store := NewStore(api, testLogger())

	if err := store.AddItem(context.Background(), "p-9", 0); err == nil {
		t.Fatalf("expected validation error")
	}
	if api.addCalls != 0 {
		t.Fatalf("no request may be issued for quantity 0")
	}
}

func TestUpdateItemNonPositiveQuantityIsNoOp(t *testing.T) {
	api := &stubAPI{}
	store := NewStore(api, testLogger())

	for _, qty := range []int{0, -1, -100} {
		if err := store.UpdateItem(context.Background(), "line-1", qty); err != nil {
			t.Fatalf("quantity %d must be silently ignored, got %v", qty, err)
		}
	}
	if api.updateCalls != 0 {
		t.Fatalf("no request may be issued for quantity <= 0, got %d calls", api.updateCalls)
	}
	if api.cartGets != 0 {
		t.Fatalf("no refresh may follow an ignored update")
	}
}

func TestUpdateItemInsufficientStockRemapped(t *testing.T) {
	api := &stubAPI{updateErr: errors.New("Insufficient quantity available for product p-1")}
	store := NewStore(api, testLogger())

	err := store.UpdateItem(context.Background(), "line-1", 5)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if err.Error() != MsgInsufficientStock {
		t.Fatalf("surfaced message must be the localized one, got %q", err.Error())
	}
	if api.cartGets != 0 {
		t.Fatalf("failed mutation must not refresh")
	}
}

func TestAddItemInsufficientStockRemapped(t *testing.T) {
	api := &stubAPI{addErr: errors.New("Insufficient quantity in stock")}
	store := NewStore(api, testLogger())

	err := store.AddItem(context.Background(), "p-1", 2)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if err.Error() != MsgInsufficientStock {
		t.Fatalf("surfaced message must be the localized one, got %q", err.Error())
	}
}

func TestMutationPassesServerMessageThrough(t *testing.T) {
	api := &stubAPI{addErr: errors.New("Product not available in your region")}
	store := NewStore(api, testLogger())

	err := store.AddItem(context.Background(), "p-1", 1)
	if err == nil || err.Error() != "Product not available in your region" {
		t.Fatalf("server message must pass through verbatim, got %v", err)
	}
	if !errors.Is(store.Err(), err) {
		t.Fatalf("mutation failure must also be retained")
	}
}

func TestRemoveAndClearTriggerRefresh(t *testing.T) {
	api := &stubAPI{cart: testCart()}
	store := NewStore(api, testLogger())

	if err := store.RemoveItem(context.Background(), "line-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.removeCalls != 1 || api.lastRemoveID != "line-1" {
		t.Fatalf("unexpected remove call: %+v", api)
	}
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.clearCalls != 1 {
		t.Fatalf("expected one clear call")
	}
	if api.cartGets != 2 {
		t.Fatalf("expected a refresh per successful mutation, got %d", api.cartGets)
	}
}
