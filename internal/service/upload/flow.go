package upload

import (
	"context"
	"fmt"
	"io"
	"log"

	"walk4you-storefront/internal/domain"
)

type avatarAPI interface {
	UpdateAvatar(ctx context.Context, asset domain.AssetRef) error
}

// Flow runs the two-step signed upload: request a ticket from the issuer,
// then push the binary straight to the media host. The binary never passes
// through the storefront backend.
type Flow struct {
	issuer   TicketIssuer
	uploader Uploader
	api      avatarAPI
	logger   *log.Logger
}

func NewFlow(issuer TicketIssuer, uploader Uploader, api avatarAPI, logger *log.Logger) *Flow {
	return &Flow{issuer: issuer, uploader: uploader, api: api, logger: logger}
}

// run is the shared sign-then-upload sequence.
func (f *Flow) run(ctx context.Context, dest Destination, filename string, file io.Reader) (*domain.AssetRef, error) {
	ticket, err := f.issuer.RequestTicket(ctx, dest)
	if err != nil {
		return nil, err
	}
	return f.uploader.Upload(ctx, ticket, filename, file)
}

// UploadAvatar uploads a profile image and persists its metadata as the
// user's avatar. When the upload succeeds but the persist call fails, the
// asset is returned alongside the error: it already exists at the media
// host with no backend record, and nothing in this system cleans it up.
func (f *Flow) UploadAvatar(ctx context.Context, username, filename string, file io.Reader) (*domain.AssetRef, error) {
	asset, err := f.run(ctx, Destination{Username: username, Purpose: "avatars"}, filename, file)
	if err != nil {
		return nil, err
	}
	if err := f.api.UpdateAvatar(ctx, *asset); err != nil {
		f.logger.Printf("avatar uploaded but not persisted, orphaned asset %s: %v", asset.PublicID, err)
		return asset, fmt.Errorf("persist avatar: %w", err)
	}
	return asset, nil
}

// UploadProductImage uploads a product image and returns the asset. The
// caller attaches the URL to the product record through the merchant CRUD.
func (f *Flow) UploadProductImage(ctx context.Context, username, filename string, file io.Reader) (*domain.AssetRef, error) {
	return f.run(ctx, Destination{Username: username, Purpose: "products"}, filename, file)
}

// Stage holds a selected file without uploading it, for flows where an
// accidental upload is costly. Nothing touches the network until Confirm.
func (f *Flow) Stage(dest Destination, filename string, file io.Reader) *Staged {
	return &Staged{flow: f, dest: dest, filename: filename, file: file}
}

// Staged is a select-then-preview-then-confirm upload. Confirm performs the
// same sign-and-upload sequence as the immediate flow.
type Staged struct {
	flow     *Flow
	dest     Destination
	filename string
	file     io.Reader
	used     bool
}

// Filename returns the staged file's name, for preview rendering.
func (s *Staged) Filename() string {
	return s.filename
}

// Confirm performs the upload. A Staged handle is single-use; the reader is
// consumed by the first call.
func (s *Staged) Confirm(ctx context.Context) (*domain.AssetRef, error) {
	if s.used {
		return nil, fmt.Errorf("staged upload already consumed")
	}
	s.used = true
	return s.flow.run(ctx, s.dest, s.filename, s.file)
}
