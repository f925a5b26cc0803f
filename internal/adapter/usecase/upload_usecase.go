package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"postcraft/internal/config/configs"
	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
)

// UploadPath is the route prefix under which issued upload URLs are served.
const UploadPath = "/api/v1/uploads/"

// UploadUseCase implements port.UploadUseCase.
type UploadUseCase struct {
	files     port.FileRepository
	publicURL string
	ttl       time.Duration
	maxBytes  int64
	now       func() time.Time
	logger    *slog.Logger
}

var _ port.UploadUseCase = (*UploadUseCase)(nil)

// NewUploadUseCase creates the upload channel.
func NewUploadUseCase(files port.FileRepository, cfg configs.Upload, logger *slog.Logger) *UploadUseCase {
	return &UploadUseCase{
		files:     files,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		ttl:       cfg.TTL,
		maxBytes:  cfg.MaxBytes,
		now:       time.Now,
		logger:    resolveLogger(logger),
	}
}

// MaxBytes is the largest accepted upload body.
func (u *UploadUseCase) MaxBytes() int64 {
	return u.maxBytes
}

// CreateUploadURL issues a single-use upload URL for requester.
func (u *UploadUseCase) CreateUploadURL(ctx context.Context, requester domain.Principal) (*port.UploadURL, error) {
	if !requester.Authenticated() {
		return nil, port.ErrUnauthenticated
	}
	now := u.now().UTC()
	t := domain.UploadTicket{
		Token:     uuid.NewString(),
		OwnerID:   requester,
		ExpiresAt: now.Add(u.ttl),
		CreatedAt: now,
	}
	if err := u.files.CreateUploadTicket(ctx, t); err != nil {
		return nil, err
	}
	return &port.UploadURL{
		URL:       u.publicURL + UploadPath + t.Token,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
	}, nil
}

// Upload consumes the ticket behind token and stores body as a file owned
// by the ticket's principal. The ticket is spent even if the body is
// rejected.
func (u *UploadUseCase) Upload(ctx context.Context, token, contentType string, body []byte) (string, error) {
	t, err := u.files.ConsumeUploadTicket(ctx, token)
	if err != nil {
		return "", err
	}
	if t == nil {
		return "", fmt.Errorf("upload url: %w", port.ErrNotFound)
	}
	if t.Expired(u.now()) {
		return "", fmt.Errorf("upload url expired: %w", port.ErrNotFound)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: empty upload", port.ErrValidation)
	}
	if u.maxBytes > 0 && int64(len(body)) > u.maxBytes {
		return "", fmt.Errorf("%w: upload exceeds %d bytes", port.ErrValidation, u.maxBytes)
	}
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	f := &domain.StoredFile{
		ID:          uuid.NewString(),
		OwnerID:     t.OwnerID,
		ContentType: contentType,
		Size:        int64(len(body)),
		Data:        body,
		CreatedAt:   u.now().UTC(),
	}
	if err = u.files.SaveFile(ctx, f); err != nil {
		return "", err
	}
	u.logger.Info("file uploaded",
		slog.String("file_id", f.ID), slog.String("owner_id", string(f.OwnerID)), slog.Int64("size", f.Size))
	return f.ID, nil
}

// GetFile returns the file if requester owns it.
func (u *UploadUseCase) GetFile(ctx context.Context, id string, requester domain.Principal) (*domain.StoredFile, error) {
	if !requester.Authenticated() {
		return nil, nil
	}
	f, err := u.files.GetFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || !requester.Owns(f.OwnerID) {
		return nil, nil
	}
	return f, nil
}
