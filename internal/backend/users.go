package backend

import (
	"context"
	"fmt"

	"walk4you-storefront/internal/domain"
)

// StoreInput is the create/update payload for a merchant store.
type StoreInput struct {
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"storeDescription,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	BUMail           string `json:"buMail,omitempty"`
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var user domain.User
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&user).
		Get("/users/me")
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &user, nil
}

// UpdateAvatar persists an uploaded asset's metadata as the user's avatar.
// The body keeps the provider's snake_case field names.
func (c *Client) UpdateAvatar(ctx context.Context, asset domain.AssetRef) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(asset).
		Post("/users/me/avatar")
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// HasStore reports whether the user already owns a store.
func (c *Client) HasStore(ctx context.Context) (bool, error) {
	tok, err := c.bearer()
	if err != nil {
		return false, err
	}

	var body struct {
		HasStore bool `json:"hasStore"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&body).
		Get("/users/me/has-store")
	if err != nil {
		return false, fmt.Errorf("fetch has-store: %w", err)
	}
	if resp.IsError() {
		return false, c.apiError(resp)
	}
	return body.HasStore, nil
}

// MyStore fetches the user's store record.
func (c *Client) MyStore(ctx context.Context) (*domain.Store, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var store domain.Store
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&store).
		Get("/users/me/store")
	if err != nil {
		return nil, fmt.Errorf("fetch store: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &store, nil
}

// CreateStore registers a new store for the user. The backend refuses a
// duplicate store with a domain validation message in detail.
func (c *Client) CreateStore(ctx context.Context, in StoreInput) (*domain.Store, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var store domain.Store
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(in).
		SetResult(&store).
		Post("/users/me/store")
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &store, nil
}

// UpdateStore replaces the store's editable fields.
func (c *Client) UpdateStore(ctx context.Context, in StoreInput) (*domain.Store, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var store domain.Store
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(in).
		SetResult(&store).
		Put("/users/me/store")
	if err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &store, nil
}

// RegisterStoreWithOTP runs the store-registration sequence: verify the OTP
// sent to the store's contact mail, then create the store. Either step's
// failure is returned with the backend's own message.
func (c *Client) RegisterStoreWithOTP(ctx context.Context, otp string, in StoreInput) (*domain.Store, error) {
	if err := c.VerifyOTP(ctx, in.BUMail, otp); err != nil {
		return nil, err
	}
	return c.CreateStore(ctx, in)
}
