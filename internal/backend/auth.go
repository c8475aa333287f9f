package backend

import (
	"context"
	"fmt"
)

// AuthResult is the login response. AccessToken is opaque; this system
// stores and forwards it without interpreting it.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// RegisterInput is the account-registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Login exchanges credentials for a bearer token. The caller decides where
// to store it (typically a MemoryToken shared with the other components).
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	var result AuthResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &result, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// SendOTP asks the backend to mail a one-time code. In development the
// backend echoes the code back; it is returned for logging and empty in
// production.
func (c *Client) SendOTP(ctx context.Context, email string) (string, error) {
	var body struct {
		OTP string `json:"otp"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendOTPRequest{Email: email}).
		SetResult(&body).
		Post("/auth/send-otp")
	if err != nil {
		return "", fmt.Errorf("send otp: %w", err)
	}
	if resp.IsError() {
		return "", c.apiError(resp)
	}
	return body.OTP, nil
}

// VerifyOTP checks a one-time code against the backend.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(verifyOTPRequest{Email: email, OTP: otp}).
		Post("/auth/verify-otp")
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}
