package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrNoCredential indicates no bearer credential is held. Callers render
	// a guest state; it is not a failure.
	ErrNoCredential = errors.New("no credential")

	// ErrUnauthorized indicates the backend rejected the held credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInsufficientStock indicates the backend refused a cart mutation
	// because the requested quantity exceeds available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNoSnapshot indicates the checkout screen was opened without a prior
	// hand-off; the caller must redirect back to the cart screen.
	ErrNoSnapshot = errors.New("no checkout snapshot")

	// ErrNothingSelected indicates checkout was attempted with no store
	// group selected.
	ErrNothingSelected = errors.New("no store group selected")

	// ErrNotConfigured indicates the upload provider credentials are missing
	// server-side; the whole upload feature is unusable until fixed.
	ErrNotConfigured = errors.New("upload provider not configured")
)
