package upload

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"walk4you-storefront/internal/config"
	"walk4you-storefront/internal/domain"
)

// Destination names where an upload should land. Folder resolution follows
// the storefront convention: user/{username}/{purpose} when both are known,
// an explicit folder otherwise, and the generic uploads bucket as the last
// resort.
type Destination struct {
	Username string
	Purpose  string
	Folder   string
}

// Resolve returns the folder the signature will bind.
func (d Destination) Resolve() string {
	if d.Username != "" && d.Purpose != "" {
		return "user/" + d.Username + "/" + d.Purpose
	}
	if d.Folder != "" {
		return d.Folder
	}
	return "uploads"
}

// TicketIssuer requests a signed upload ticket for a destination. The local
// Signer computes it in-process; HTTPIssuer fetches it from the storefront's
// signing endpoint. Tests inject fakes.
type TicketIssuer interface {
	RequestTicket(ctx context.Context, dest Destination) (*domain.UploadTicket, error)
}

// Signature computes the provider's request signature: the signed parameters
// (timestamp, folder, and upload_preset when present — never the file, api
// key, resource type or cloud name) sorted by name, joined as key=value
// pairs with '&', secret appended, SHA-1, lowercase hex. A pure function of
// its inputs.
func Signature(timestamp int64, folder, uploadPreset, secret string) string {
	params := map[string]string{
		"timestamp": strconv.FormatInt(timestamp, 10),
		"folder":    folder,
	}
	if uploadPreset != "" {
		params["upload_preset"] = uploadPreset
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	toSign := strings.Join(pairs, "&") + secret

	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

// Signer issues tickets locally from the provider configuration. It holds
// the secret; tickets it issues do not.
type Signer struct {
	cfg config.Cloudinary
	now func() time.Time
}

func NewSigner(cfg config.Cloudinary) *Signer {
	return &Signer{cfg: cfg, now: time.Now}
}

// RequestTicket signs a destination. It refuses with ErrNotConfigured when
// the provider credentials are missing; the whole upload feature is down
// until an operator fixes the configuration.
func (s *Signer) RequestTicket(_ context.Context, dest Destination) (*domain.UploadTicket, error) {
	if !s.cfg.Configured() {
		return nil, domain.ErrNotConfigured
	}

	folder := dest.Resolve()
	timestamp := s.now().Unix()

	return &domain.UploadTicket{
		Timestamp:    timestamp,
		Signature:    Signature(timestamp, folder, s.cfg.UploadPreset, s.cfg.APISecret),
		APIKey:       s.cfg.APIKey,
		CloudName:    s.cfg.CloudName,
		UploadPreset: s.cfg.UploadPreset,
		Folder:       folder,
	}, nil
}

var _ TicketIssuer = (*Signer)(nil)

// ticketError formats a signing-endpoint refusal.
func ticketError(status int, message string) error {
	if message == "" {
		message = fmt.Sprintf("signature request failed with status %d", status)
	}
	if status == 500 && strings.Contains(message, "not configured") {
		return domain.ErrNotConfigured
	}
	return fmt.Errorf("%s", message)
}
