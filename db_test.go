package img2c

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := OpenCache(filepath.Join(t.TempDir(), "img2c.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	return cache
}

func TestCacheMiss(t *testing.T) {
	cache := testCache(t)

	crc, err := cache.FindCRC("logo.png", "bgr565")
	require.NoError(t, err)
	assert.Empty(t, crc)
}

func TestCacheStoreAndFind(t *testing.T) {
	cache := testCache(t)

	require.NoError(t, cache.Store("logo.png", "bgr565", "CBF43926"))

	crc, err := cache.FindCRC("logo.png", "bgr565")
	require.NoError(t, err)
	assert.Equal(t, "CBF43926", crc)

	// Same path, different format, is a separate entry.
	crc, err = cache.FindCRC("logo.png", "rgb888")
	require.NoError(t, err)
	assert.Empty(t, crc)
}

func TestCacheReplace(t *testing.T) {
	cache := testCache(t)

	require.NoError(t, cache.Store("logo.png", "bgr565", "11111111"))
	require.NoError(t, cache.Store("logo.png", "bgr565", "22222222"))

	crc, err := cache.FindCRC("logo.png", "bgr565")
	require.NoError(t, err)
	assert.Equal(t, "22222222", crc)
}
