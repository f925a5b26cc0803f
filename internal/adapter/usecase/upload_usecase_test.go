package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/adapter/memory"
	"postcraft/internal/config/configs"
	"postcraft/internal/core/port"
)

func newUploads(maxBytes int64) *UploadUseCase {
	return NewUploadUseCase(memory.NewStore(), configs.Upload{
		PublicURL: "https://files.example/",
		TTL:       time.Minute,
		MaxBytes:  maxBytes,
	}, nil)
}

func TestCreateUploadURL(t *testing.T) {
	ctx := context.Background()
	svc := newUploads(1024)

	_, err := svc.CreateUploadURL(ctx, "")
	require.ErrorIs(t, err, port.ErrUnauthenticated)

	u, err := svc.CreateUploadURL(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example/api/v1/uploads/"+u.Token, u.URL)
	assert.WithinDuration(t, time.Now().Add(time.Minute), u.ExpiresAt, 5*time.Second)
}

func TestUploadConsumesTicket(t *testing.T) {
	ctx := context.Background()
	svc := newUploads(1024)

	u, err := svc.CreateUploadURL(ctx, "u1")
	require.NoError(t, err)

	id, err := svc.Upload(ctx, u.Token, "", []byte("%PNG-ish"))
	require.NoError(t, err)

	f, err := svc.GetFile(ctx, id, "u1")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "text/plain; charset=utf-8", f.ContentType)
	assert.EqualValues(t, 8, f.Size)

	_, err = svc.Upload(ctx, u.Token, "image/png", []byte("again"))
	require.ErrorIs(t, err, port.ErrNotFound)

	foreign, err := svc.GetFile(ctx, id, "u2")
	require.NoError(t, err)
	assert.Nil(t, foreign)
}

func TestUploadRejects(t *testing.T) {
	ctx := context.Background()
	svc := newUploads(4)

	_, err := svc.Upload(ctx, "unknown", "image/png", []byte("x"))
	require.ErrorIs(t, err, port.ErrNotFound)

	u, err := svc.CreateUploadURL(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.Upload(ctx, u.Token, "image/png", []byte(strings.Repeat("x", 5)))
	require.ErrorIs(t, err, port.ErrValidation)

	u, err = svc.CreateUploadURL(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.Upload(ctx, u.Token, "image/png", nil)
	require.ErrorIs(t, err, port.ErrValidation)

	u, err = svc.CreateUploadURL(ctx, "u1")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = svc.Upload(ctx, u.Token, "image/png", []byte("x"))
	require.ErrorIs(t, err, port.ErrNotFound)
}
