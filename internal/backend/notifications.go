package backend

import (
	"context"
	"fmt"

	"walk4you-storefront/internal/domain"
)

// Notifications lists the user's notification feed.
func (c *Client) Notifications(ctx context.Context) ([]domain.Notification, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var notifications []domain.Notification
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&notifications).
		Get("/notifications")
	if err != nil {
		return nil, fmt.Errorf("fetch notifications: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return notifications, nil
}

// UnreadCount fetches the number of unread notifications.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	tok, err := c.bearer()
	if err != nil {
		return 0, err
	}

	var body struct {
		UnreadCount int `json:"unreadCount"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&body).
		Get("/notifications/unread-count")
	if err != nil {
		return 0, fmt.Errorf("fetch unread count: %w", err)
	}
	if resp.IsError() {
		return 0, c.apiError(resp)
	}
	return body.UnreadCount, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	tok, err := c.bearer()
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		Put("/notifications/" + id + "/read")
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}
