package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepo_SetGetDelete(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewCacheRepo(client, "cache:")
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "user:alice", []byte(`{"name":"alice"}`), time.Minute))
	assert.True(t, mr.Exists("cache:user:alice"))

	got, err := repo.Get(ctx, "user:alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice"}`, string(got))

	deleted, err := repo.Delete(ctx, "user:alice")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "user:alice")
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err = repo.Get(ctx, "user:alice")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheRepo_EmptyKey(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewCacheRepo(client, "")
	ctx := context.Background()

	assert.Error(t, repo.Set(ctx, "", nil, 0))
	_, err := repo.Get(ctx, "")
	assert.Error(t, err)
	_, err = repo.Delete(ctx, "")
	assert.Error(t, err)
}

func TestCacheRepo_HealthAndExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewCacheRepo(client, "")
	ctx := context.Background()

	require.NoError(t, repo.Health(ctx))

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)
	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)

	mr.Close()
	assert.Error(t, repo.Health(ctx))
}
