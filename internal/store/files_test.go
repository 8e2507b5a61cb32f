package store

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/resourcekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePostsCache(t *testing.T) {
	ctx := context.Background()
	cache := NewFilePostsCache(filepath.Join(t.TempDir(), "nested", "data.json"))

	_, err := cache.Load(ctx)
	assert.ErrorIs(t, err, ErrPostsNotLoaded)

	posts := []models.Post{{ID: 1, UserID: 1, Title: "t1", Body: "b1"}, {ID: 2, UserID: 1, Title: "t2"}}
	require.NoError(t, cache.Save(ctx, posts))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, loaded)

	require.NoError(t, cache.Save(ctx, nil))
	loaded, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFilePostsCache_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := NewFilePostsCache(path).Load(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPostsNotLoaded)
}

func TestFileUploadStorage_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := NewFileUploadStorage(dir)

	name, size, err := storage.Save(context.Background(), "avatar", "Me.PNG", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, int64(len("png-bytes")), size)
	assert.Regexp(t, regexp.MustCompile(`^avatar-\d+-\d+\.png$`), name)
	assert.Equal(t, dir, storage.Dir())

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestUploadFileName(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	name := uploadFileName("avatar", "../../etc/photo.JPEG", now)

	assert.True(t, strings.HasPrefix(name, "avatar-1700000000123-"))
	assert.True(t, strings.HasSuffix(name, ".jpeg"))
	assert.NotContains(t, name, "/")
}
