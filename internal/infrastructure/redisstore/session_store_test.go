package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-token-api/internal/domain/entity"
	"github.com/oksasatya/go-user-token-api/internal/domain/repository"
)

func newStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionStore(rdb, ttl), mr
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := store.Save(ctx, entity.Session{UserID: "u1", SessionID: "s1", Email: "a@b.c", Name: "A", CreatedAt: created})
	require.NoError(t, err)

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, "a@b.c", got.Email)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Equal(t, time.Hour, mr.TTL("user:session:u1"))
}

func TestSessionStore_SaveReplacesSession(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.Session{UserID: "u1", SessionID: "old", Name: "A"}))
	require.NoError(t, store.Save(ctx, entity.Session{UserID: "u1", SessionID: "new"}))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.SessionID)
	assert.Empty(t, got.Name)
}

func TestSessionStore_Missing(t *testing.T) {
	store, _ := newStore(t, time.Hour)

	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	store, mr := newStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.Session{UserID: "u1", SessionID: "s1"}))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
