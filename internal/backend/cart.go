package backend

import (
	"context"
	"fmt"

	"walk4you-storefront/internal/domain"
)

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Cart fetches the authenticated user's cart.
func (c *Client) Cart(ctx context.Context) (*domain.Cart, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&cart).
		Get("/cart")
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &cart, nil
}

// AddCartItem adds quantity units of a product to the cart. The backend
// performs the stock check.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(addCartItemRequest{ProductID: productID, Quantity: quantity}).
		Post("/cart/items")
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// UpdateCartItem proposes a new quantity for an existing cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(updateCartItemRequest{Quantity: quantity}).
		Put("/cart/items/" + itemID)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// RemoveCartItem removes one cart line unconditionally.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		Delete("/cart/items/" + itemID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// ClearCart removes every line from the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		Delete("/cart")
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}
