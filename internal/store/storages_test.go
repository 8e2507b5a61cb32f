package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageConfig(t *testing.T, driver, dsn string) config.Storage {
	dir := t.TempDir()
	return config.Storage{
		DB:    config.DB{Driver: driver, DSN: dsn},
		Files: config.Files{UploadsDir: filepath.Join(dir, "uploads"), PostsFile: filepath.Join(dir, "data.json")},
	}
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), storageConfig(t, "mongo", ""), logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), storageConfig(t, config.DriverMemory, ""), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NotNil(t, s.UserRepository)
	require.NotNil(t, s.PostsCache)
	require.NotNil(t, s.UploadStorage)

	first := NewCollection[models.Product](s, "products")
	second := NewCollection[models.Product](s, "products")
	assert.Same(t, first, second)

	assert.Panics(t, func() { NewCollection[models.Order](s, "products") })
}

// TestNewStorages_SQLite runs the document collection and user repository
// against a real SQLite database.
func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "resourcekit.db")

	s, err := NewStorages(ctx, storageConfig(t, config.DriverSQLite, dsn), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	products := NewCollection[models.Product](s, "products")
	orders := NewCollection[models.Order](s, "orders")

	lamp, err := products.Create(ctx, models.Product{Name: "lamp", Price: 3})
	require.NoError(t, err)
	desk, err := products.Create(ctx, models.Product{Name: "desk", Price: 30})
	require.NoError(t, err)
	_, err = orders.Create(ctx, models.Order{Ref: "r", Product: lamp.ID, ProductName: "lamp", User: "u"})
	require.NoError(t, err)

	// collections share the table but not their records
	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	all, err := products.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, lamp.ID, all[0].ID)

	window, err := products.FindWindow(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, desk.ID, window[0].ID)

	updated, err := products.Update(ctx, lamp.ID, json.RawMessage(`{"price":4}`))
	require.NoError(t, err)
	assert.Equal(t, models.Product{Name: "lamp", Price: 4}, updated.Data)

	got, err := products.FindByID(ctx, lamp.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = orders.FindByID(ctx, lamp.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	deleted, err := products.Delete(ctx, lamp.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, deleted)
	_, err = products.Delete(ctx, lamp.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	user, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = s.UserRepository.CreateUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := s.UserRepository.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, user.CreatedAt.Equal(found.CreatedAt))

	require.NoError(t, s.UserRepository.UpdatePassword(ctx, user.ID, "h2"))
	found, err = s.UserRepository.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "h2", found.PasswordHash)
}
