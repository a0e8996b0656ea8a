package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfaid/vetflow/internal/common"
)

func newTestCache(t *testing.T) *SQLiteScanCache {
	t.Helper()
	cache, err := NewSQLiteScanCache(filepath.Join(t.TempDir(), "scans.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, cache.Close())
	})
	return cache
}

func TestSQLiteScanCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	response := []byte(`{"scanId":"abc","numberOfMatches":1,"persons":[{"name":"Jan de Vries"}]}`)
	require.NoError(t, cache.Put(ctx, "hash-1", response))

	got, err := cache.Get(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, response, got)
}

func TestSQLiteScanCache_MissReturnsNotFound(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "never-seen")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteScanCache_PutReplaces(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	require.NoError(t, cache.Put(ctx, "hash-1", []byte("old")))
	require.NoError(t, cache.Put(ctx, "hash-1", []byte("new")))

	got, err := cache.Get(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestNewSQLiteScanCache_EmptyPath(t *testing.T) {
	_, err := NewSQLiteScanCache("")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}
