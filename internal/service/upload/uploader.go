package upload

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/go-resty/resty/v2"

	"walk4you-storefront/internal/domain"
)

// DefaultUploadBase is the media host's upload endpoint root.
const DefaultUploadBase = "https://api.cloudinary.com"

// Uploader performs the direct binary upload against the media host. Tests
// inject a fake so no flow depends on the real provider.
type Uploader interface {
	Upload(ctx context.Context, ticket *domain.UploadTicket, filename string, file io.Reader) (*domain.AssetRef, error)
}

// CloudinaryUploader posts multipart uploads straight to Cloudinary. The
// host recomputes the ticket's signature from its own copy of the secret and
// rejects the upload on mismatch; that is how the folder and preset are
// enforced without the secret ever reaching this side.
type CloudinaryUploader struct {
	http *resty.Client
}

func NewCloudinaryUploader() *CloudinaryUploader {
	return &CloudinaryUploader{http: resty.New().SetBaseURL(DefaultUploadBase)}
}

// NewCloudinaryUploaderAt targets an alternate upload host, used by tests.
func NewCloudinaryUploaderAt(baseURL string) *CloudinaryUploader {
	return &CloudinaryUploader{http: resty.New().SetBaseURL(baseURL)}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, ticket *domain.UploadTicket, filename string, file io.Reader) (*domain.AssetRef, error) {
	form := map[string]string{
		"api_key":   ticket.APIKey,
		"timestamp": strconv.FormatInt(ticket.Timestamp, 10),
		"signature": ticket.Signature,
		"folder":    ticket.Folder,
	}
	if ticket.UploadPreset != "" {
		form["upload_preset"] = ticket.UploadPreset
	}

	var asset domain.AssetRef
	var failure struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	resp, err := u.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		SetFormData(form).
		SetResult(&asset).
		SetError(&failure).
		Post("/v1_1/" + ticket.CloudName + "/image/upload")
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if resp.IsError() {
		// The provider's own message (bad signature, size or type policy)
		// is surfaced verbatim.
		if failure.Error.Message != "" {
			return nil, fmt.Errorf("%s", failure.Error.Message)
		}
		return nil, fmt.Errorf("upload failed: %s", resp.Status())
	}
	return &asset, nil
}

var _ Uploader = (*CloudinaryUploader)(nil)
