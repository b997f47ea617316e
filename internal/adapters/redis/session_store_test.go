package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, s
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewSessionStore(client, SessionStoreOptions{})
	ctx := context.Background()

	session := domainauth.Session{
		ID:             "test-session-1",
		UserName:       "alice",
		ReturnTo:       "/paper/p1",
		BackendCookies: []domainauth.BackendCookie{{Name: "SESSIONID", Value: "abc"}},
		Messages:       []domainauth.Message{{Level: domainauth.MessageError, Key: "_Logout_Not_connected_"}},
		ExpiresAt:      time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.UserName, retrieved.UserName)
	assert.Equal(t, session.ReturnTo, retrieved.ReturnTo)
	assert.Equal(t, session.BackendCookies, retrieved.BackendCookies)
	assert.Equal(t, session.Messages, retrieved.Messages)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewSessionStore(client, SessionStoreOptions{})

	_, err := store.Get(context.Background(), "non-existent")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewSessionStore(client, SessionStoreOptions{})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "del", ExpiresAt: time.Now().Add(time.Minute)}))
	require.NoError(t, store.Delete(ctx, "del"))
	require.NoError(t, store.Delete(ctx, ""))

	_, err := store.Get(ctx, "del")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_TTLFollowsExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionStore(client, SessionStoreOptions{Prefix: "t:"})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "ttl", ExpiresAt: time.Now().Add(10 * time.Minute)}))
	assert.True(t, mr.Exists("t:ttl"))
	ttl := mr.TTL("t:ttl")
	assert.InDelta(t, (10 * time.Minute).Seconds(), ttl.Seconds(), 2)

	mr.FastForward(11 * time.Minute)
	_, err := store.Get(ctx, "ttl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_RejectsInvalid(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewSessionStore(client, SessionStoreOptions{})
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, domainauth.Session{ExpiresAt: time.Now().Add(time.Minute)}))
	assert.Error(t, store.Save(ctx, domainauth.Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)}))
}

func TestSessionStore_ExpiredRecordIsRemoved(t *testing.T) {
	client, mr := setupTestRedis(t)
	now := time.Now()
	store := NewSessionStore(client, SessionStoreOptions{Now: func() time.Time { return now }})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "clock", ExpiresAt: now.Add(time.Minute)}))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, "clock")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists("blueweb:session:clock"))
}
