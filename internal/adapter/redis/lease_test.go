package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcraft/internal/core/port"
)

func newTestLease(t *testing.T) (*Lease, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	l := NewLease(db)
	l.newToken = func() string { return "token-1" }
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return l, mock
}

func TestLeaseAcquireAndRelease(t *testing.T) {
	l, mock := newTestLease(t)
	ctx := context.Background()

	mock.ExpectSetNX("postcraft:lease:generate:ca-1", "token-1", time.Minute).SetVal(true)
	mock.ExpectEval(releaseScript, []string{"postcraft:lease:generate:ca-1"}, "token-1").SetVal(int64(1))

	release, err := l.Acquire(ctx, "generate:ca-1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}

func TestLeaseHeldElsewhere(t *testing.T) {
	l, mock := newTestLease(t)

	mock.ExpectSetNX("postcraft:lease:generate:ca-1", "token-1", time.Minute).SetVal(false)

	release, err := l.Acquire(context.Background(), "generate:ca-1", time.Minute)
	require.ErrorIs(t, err, port.ErrGenerationInProgress)
	assert.Nil(t, release)
}

func TestLeaseRedisError(t *testing.T) {
	l, mock := newTestLease(t)

	mock.ExpectSetNX("postcraft:lease:generate:ca-1", "token-1", time.Minute).SetErr(errors.New("connection refused"))

	_, err := l.Acquire(context.Background(), "generate:ca-1", time.Minute)
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrGenerationInProgress)
}
