package upload

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"walk4you-storefront/internal/domain"
)

// HTTPIssuer fetches tickets from a storefront signing endpoint, for clients
// running outside the process that holds the provider secret.
type HTTPIssuer struct {
	http *resty.Client
}

// NewHTTPIssuer builds an issuer against the storefront base URL (the host
// serving /api/uploads/cloudinary-sign).
func NewHTTPIssuer(baseURL string) *HTTPIssuer {
	return &HTTPIssuer{http: resty.New().SetBaseURL(baseURL)}
}

func (h *HTTPIssuer) RequestTicket(ctx context.Context, dest Destination) (*domain.UploadTicket, error) {
	var ticket domain.UploadTicket
	var failure struct {
		Error string `json:"error"`
	}

	resp, err := h.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"username": dest.Username,
			"type":     dest.Purpose,
			"folder":   dest.Folder,
		}).
		SetResult(&ticket).
		SetError(&failure).
		Get("/api/uploads/cloudinary-sign")
	if err != nil {
		return nil, fmt.Errorf("request upload ticket: %w", err)
	}
	if resp.IsError() {
		return nil, ticketError(resp.StatusCode(), failure.Error)
	}
	return &ticket, nil
}

var _ TicketIssuer = (*HTTPIssuer)(nil)
