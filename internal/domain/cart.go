package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the server's snapshot of a user's cart. The backend owns it; this
// process only caches the most recently fetched copy.
type Cart struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Items       []CartLine      `json:"items"`
	TotalItems  int             `json:"totalItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CartLine is one product entry in a cart. TotalPrice is computed server-side
// and trusted as authoritative; clients never recompute it.
type CartLine struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	ProductImage string          `json:"productImage,omitempty"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	StoreID      string          `json:"storeId"`
	StoreName    string          `json:"storeName"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// StoreGroup is a cart-screen-only grouping of cart lines by owning store.
// Selected is pure UI state with no server counterpart.
type StoreGroup struct {
	StoreID     string          `json:"storeId"`
	StoreName   string          `json:"storeName"`
	Items       []CartLine      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Selected    bool            `json:"selected"`
}
