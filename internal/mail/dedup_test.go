package mail

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupCacheMissingFileIsEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")

	cache, err := NewFileDedupCache(path, 0)

	require.NoError(t, err)
	assert.False(t, cache.Contains("anything"))
}

func TestDedupCacheMarkAndContains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	cache, err := NewFileDedupCache(path, 0)
	require.NoError(t, err)

	assert.False(t, cache.Contains("msg-1"))
	require.NoError(t, cache.MarkProcessed("msg-1"))
	assert.True(t, cache.Contains("msg-1"))
}

func TestDedupCacheFlushesEveryNthInsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	cache, err := NewFileDedupCache(path, 3)
	require.NoError(t, err)

	require.NoError(t, cache.MarkProcessed("msg-1"))
	require.NoError(t, cache.MarkProcessed("msg-2"))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no flush before the batch threshold")

	require.NoError(t, cache.MarkProcessed("msg-3"))
	assert.FileExists(t, path)

	var ids []string
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &ids))
	assert.Len(t, ids, 3)
}

func TestDedupCacheSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	cache, err := NewFileDedupCache(path, 1)
	require.NoError(t, err)
	require.NoError(t, cache.MarkProcessed("msg-1"))
	require.NoError(t, cache.MarkProcessed("msg-2"))

	reloaded, err := NewFileDedupCache(path, 1)
	require.NoError(t, err)

	assert.True(t, reloaded.Contains("msg-1"))
	assert.True(t, reloaded.Contains("msg-2"))
	assert.False(t, reloaded.Contains("msg-3"))
}

func TestDedupCacheExplicitFlushPersistsPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	cache, err := NewFileDedupCache(path, 100)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, cache.MarkProcessed(fmt.Sprintf("msg-%d", i)))
	}
	require.NoError(t, cache.Flush())

	reloaded, err := NewFileDedupCache(path, 100)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.True(t, reloaded.Contains(fmt.Sprintf("msg-%d", i)))
	}
}

func TestDedupCacheMarkIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	cache, err := NewFileDedupCache(path, 2)
	require.NoError(t, err)

	require.NoError(t, cache.MarkProcessed("msg-1"))
	require.NoError(t, cache.MarkProcessed("msg-1"))
	require.NoError(t, cache.Flush())

	var ids []string
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &ids))
	assert.Len(t, ids, 1)
}

func TestDedupCacheRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFileDedupCache(path, 0)

	assert.Error(t, err)
}
