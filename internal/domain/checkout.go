package domain

import "github.com/shopspring/decimal"

// SnapshotStore is a frozen copy of one selected store group inside a
// checkout snapshot.
type SnapshotStore struct {
	StoreID     string          `json:"storeId"`
	StoreName   string          `json:"storeName"`
	Items       []CartLine      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CheckoutSnapshot is an immutable point-in-time copy of the user's selected
// store groups plus grand totals, captured when the user proceeds from the
// cart screen to checkout. It is never re-synced with the live cart; prices
// and stock may have changed by the time an order is placed, and any real
// order integration must re-validate server-side.
type CheckoutSnapshot struct {
	Stores      []SnapshotStore `json:"stores"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalItems  int             `json:"totalItems"`
}
