package backend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"walk4you-storefront/internal/domain"
)

// ProductInput is the merchant-facing create/update payload.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"image_url,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// FeaturedProducts fetches the public landing-page product list.
func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	var products []domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&products).
		Get("/products/featured")
	if err != nil {
		return nil, fmt.Errorf("fetch featured products: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return products, nil
}

// PublicProduct fetches one product without a credential.
func (c *Client) PublicProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&product).
		Get("/public/products/" + id)
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &product, nil
}

// Product fetches one product on the authenticated surface.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var product domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&product).
		Get("/products/" + id)
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &product, nil
}

// MyProducts lists the merchant's own products.
func (c *Client) MyProducts(ctx context.Context) ([]domain.Product, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&products).
		Get("/products/my-products")
	if err != nil {
		return nil, fmt.Errorf("fetch my products: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return products, nil
}

// CreateProduct lists a new product under the merchant's store.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var product domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(in).
		SetResult(&product).
		Post("/products")
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &product, nil
}

// UpdateProduct replaces a product's merchant-editable fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var product domain.Product
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(in).
		SetResult(&product).
		Put("/products/" + id)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &product, nil
}

// DeleteProduct removes a product listing.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		Delete("/products/" + id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// CategoryCounts fetches product counts per category for the category rail.
func (c *Client) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	var counts []domain.CategoryCount
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&counts).
		Get("/products/category-counts")
	if err != nil {
		return nil, fmt.Errorf("fetch category counts: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return counts, nil
}
