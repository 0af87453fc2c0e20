package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	key, err := store.Save(context.Background(), []byte("png-bytes"), SaveOptions{
		Category:  "posts",
		BaseName:  "cover image",
		Extension: ".PNG",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "posts/"))
	assert.True(t, strings.HasSuffix(key, "/cover-image.png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(context.Background(), key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(context.Background(), key), "deleting twice is not an error")
}

func TestLocalStorageRejectsEmptyPayload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), nil, SaveOptions{})
	assert.Error(t, err)
}

func TestLocalStorageDeleteStaysInsideBaseDir(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	store, err := NewLocalStorage(filepath.Join(root, "uploads"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "../outside.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		base, url, key string
		ok             bool
	}{
		{"/files", "/files/posts/2024/01/01/a.png", "posts/2024/01/01/a.png", true},
		{"https://cdn.test/", "https://cdn.test/posts/a.png", "posts/a.png", true},
		{"/files", "https://elsewhere.test/a.png", "", false},
		{"", "/files/a.png", "", false},
	}
	for _, tt := range tests {
		key, ok := KeyFromURL(tt.base, tt.url)
		assert.Equal(t, tt.ok, ok, tt.url)
		assert.Equal(t, tt.key, key, tt.url)
	}
}

func TestKeyLayout(t *testing.T) {
	fixed := func() time.Time { return time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC) }

	layout := keyLayout{prefix: "blog", now: fixed}
	key := layout.objectKey(SaveOptions{Category: "Posts", BaseName: "Cover Image", Extension: ".PNG"})
	assert.Equal(t, "blog/posts/2024/05/cover-image.png", key)

	layout = keyLayout{now: fixed}
	key = layout.objectKey(SaveOptions{})
	assert.True(t, strings.HasPrefix(key, "misc/2024/05/"), key)
	assert.True(t, strings.HasSuffix(key, ".bin"), key)
}

func TestCleanKey(t *testing.T) {
	key, err := cleanKey("/posts/../posts/a.png")
	require.NoError(t, err)
	assert.Equal(t, "posts/a.png", key)

	key, err = cleanKey("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "etc/passwd", key)

	_, err = cleanKey("  ")
	assert.ErrorIs(t, err, errEmptyKey)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/webp", contentTypeFor(SaveOptions{ContentType: "image/webp", Extension: "png"}))
	assert.Equal(t, "image/png", contentTypeFor(SaveOptions{Extension: "png"}))
	assert.Equal(t, "application/octet-stream", contentTypeFor(SaveOptions{Extension: "zzzunknown"}))
}
