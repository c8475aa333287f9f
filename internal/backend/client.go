package backend

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/go-resty/resty/v2"

	"walk4you-storefront/internal/domain"
)

// TokenSource yields the bearer credential attached to authenticated
// requests. An empty string means no credential is held. The token is opaque
// to this package; it is never inspected or refreshed.
type TokenSource interface {
	Token() string
}

// MemoryToken is a TokenSource backed by process memory, filled in after a
// successful login and cleared on logout.
type MemoryToken struct {
	mu    sync.RWMutex
	token string
}

func (m *MemoryToken) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *MemoryToken) Set(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

func (m *MemoryToken) Clear() {
	m.Set("")
}

// APIError is a non-2xx backend response. Detail carries the server's own
// message verbatim so callers can surface or pattern-match it.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Client talks to the backend REST API.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger *log.Logger
}

// New builds a Client against baseURL. tokens supplies the bearer credential;
// it may be shared with other components (poller, cart store).
func New(baseURL string, tokens TokenSource, logger *log.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient, tokens: tokens, logger: logger}
}

// bearer returns the current credential or ErrNoCredential. Credential-gated
// calls never reach the network without a token.
func (c *Client) bearer() (string, error) {
	tok := c.tokens.Token()
	if tok == "" {
		return "", domain.ErrNoCredential
	}
	return tok, nil
}

// apiError maps a non-2xx response to an error. 401 collapses to
// ErrUnauthorized; everything else keeps the server's detail message.
func (c *Client) apiError(resp *resty.Response) error {
	if resp.StatusCode() == 401 {
		return domain.ErrUnauthorized
	}
	if resp.StatusCode() == 404 {
		return domain.ErrNotFound
	}

	var body struct {
		Detail string `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		detail = body.Detail
	}
	if detail == "" {
		detail = fmt.Sprintf("request failed: %s", resp.Status())
	}
	return &APIError{Status: resp.StatusCode(), Detail: detail}
}
