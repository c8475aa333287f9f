package checkout

import (
	"context"

	"walk4you-storefront/internal/domain"
	cartsvc "walk4you-storefront/internal/service/cart"
)

// MsgSelectBeforeCheckout prompts the user when checkout is attempted with
// nothing selected.
const MsgSelectBeforeCheckout = "กรุณาเลือกสินค้าที่ต้องการชำระเงิน"

// MsgOrderNotImplemented is shown on place-order; ordering is a stub in
// this system.
const MsgOrderNotImplemented = "ฟีเจอร์การสั่งซื้อจะพัฒนาต่อไป"

// Channel moves a user-selected cart subset from the cart screen to the
// checkout screen without a server round trip. The snapshot it hands over
// is frozen: if the live cart changes concurrently, the snapshot does not
// follow. A real order placement must re-validate prices and stock
// server-side before committing.
type Channel struct {
	store SnapshotStore
}

func NewChannel(store SnapshotStore) *Channel {
	return &Channel{store: store}
}

// Proceed captures the selected store groups into a snapshot and writes it
// for the session. With nothing selected it refuses with ErrNothingSelected
// and writes nothing; the caller shows MsgSelectBeforeCheckout.
func (c *Channel) Proceed(ctx context.Context, sessionID string, sel *cartsvc.Selection) (*domain.CheckoutSnapshot, error) {
	selected := sel.SelectedGroups()
	if len(selected) == 0 {
		return nil, domain.ErrNothingSelected
	}

	stores := make([]domain.SnapshotStore, 0, len(selected))
	for _, g := range selected {
		stores = append(stores, domain.SnapshotStore{
			StoreID:     g.StoreID,
			StoreName:   g.StoreName,
			Items:       g.Items,
			TotalAmount: g.TotalAmount,
		})
	}

	snap := domain.CheckoutSnapshot{
		Stores:      stores,
		TotalAmount: sel.SelectedTotal(),
		TotalItems:  sel.SelectedItemCount(),
	}

	if err := c.store.Put(ctx, sessionID, snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Open reads the session's snapshot for the checkout screen. ErrNoSnapshot
// means the screen must redirect back to the cart; it never renders without
// a snapshot.
func (c *Channel) Open(ctx context.Context, sessionID string) (*domain.CheckoutSnapshot, error) {
	return c.store.Get(ctx, sessionID)
}

// PlaceOrder is the order-placement integration point. It is a stub: the
// snapshot is discarded and no order is created.
func (c *Channel) PlaceOrder(ctx context.Context, sessionID string) error {
	return c.store.Delete(ctx, sessionID)
}

// Abandon discards the session's snapshot when the user navigates away.
func (c *Channel) Abandon(ctx context.Context, sessionID string) error {
	return c.store.Delete(ctx, sessionID)
}
