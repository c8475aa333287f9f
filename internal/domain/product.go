package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product as the backend returns it on both the public and merchant surfaces.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"image_url,omitempty"`
	Category    string          `json:"category,omitempty"`
	StoreID     string          `json:"storeId,omitempty"`
	StoreName   string          `json:"storeName,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Review is one customer review on a product.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryCount pairs a product category with how many products it holds.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
