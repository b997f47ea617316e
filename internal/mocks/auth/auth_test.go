package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/ports"
)

func TestStubSessionBackend_Defaults(t *testing.T) {
	backend := NewStubSessionBackend("pw")
	ctx := context.Background()

	creds, err := backend.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", creds.UserName)
	assert.Equal(t, []domainauth.BackendCookie{{Name: "SESSIONID", Value: "alice-1"}}, creds.Cookies)

	creds2, err := backend.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice-2", creds2.Cookies[0].Value)

	_, err = backend.Login(ctx, "alice", "nope")
	require.ErrorIs(t, err, ErrRejected)

	require.NoError(t, backend.Logout(ctx, creds))
	assert.Equal(t, 1, backend.Logouts())
}

func TestStubSessionBackend_CustomFunc(t *testing.T) {
	backend := &StubSessionBackend{
		LoginFunc: func(_ context.Context, username, _ string) (ports.Credentials, error) {
			return ports.Credentials{UserName: "custom-" + username}, nil
		},
	}

	creds, err := backend.Login(context.Background(), "bob", "")
	require.NoError(t, err)
	assert.Equal(t, "custom-bob", creds.UserName)
}

func TestMemorySessionStore_SaveAndGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", UserName: "alice", ReturnTo: "/papers"}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
	assert.Equal(t, 1, store.Len())
}

func TestMemorySessionStore_GetMissing(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(context.Background(), "")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestMemorySessionStore_SaveEmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	require.Error(t, store.Save(context.Background(), domainauth.Session{}))
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s1"}))
	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}
