package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/models"
)

// filePostsCache stores posts as a JSON array in a single file.
type filePostsCache struct {
	mu   sync.RWMutex
	path string
}

// NewFilePostsCache returns a [PostsCache] writing to path. The file is
// created on the first Save.
func NewFilePostsCache(path string) PostsCache {
	return &filePostsCache{path: path}
}

// Save replaces the cached posts. The file is written to a temporary
// sibling and renamed, so readers never see a partial document.
func (c *filePostsCache) Save(ctx context.Context, posts []models.Post) error {
	log := logger.FromContext(ctx)

	if posts == nil {
		posts = []models.Post{}
	}
	payload, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding posts: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dir := filepath.Dir(c.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating posts cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating posts cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing posts cache file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing posts cache file: %w", err)
	}
	if err = os.Rename(tmp.Name(), c.path); err != nil {
		log.Err(err).Str("func", "*filePostsCache.Save").Str("path", c.path).Msg("error replacing posts cache")
		return fmt.Errorf("error replacing posts cache file: %w", err)
	}

	return nil
}

func (c *filePostsCache) Load(_ context.Context) ([]models.Post, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPostsNotLoaded
		}
		return nil, fmt.Errorf("error reading posts cache file: %w", err)
	}

	var posts []models.Post
	if err = json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("error decoding posts cache file: %w", err)
	}

	return posts, nil
}
