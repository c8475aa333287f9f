package backend

import (
	"context"
	"fmt"

	"walk4you-storefront/internal/domain"
)

// ReviewInput is the create-review payload.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ProductReviews lists reviews for one product. Public surface, no credential.
func (c *Client) ProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	var reviews []domain.Review
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&reviews).
		Get("/products/" + productID + "/reviews")
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return reviews, nil
}

// CreateReview submits a review for a product the user purchased.
func (c *Client) CreateReview(ctx context.Context, productID string, in ReviewInput) (*domain.Review, error) {
	tok, err := c.bearer()
	if err != nil {
		return nil, err
	}

	var review domain.Review
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetBody(in).
		SetResult(&review).
		Post("/products/" + productID + "/reviews")
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &review, nil
}
