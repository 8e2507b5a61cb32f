package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	dir := t.TempDir()
	cfg := config.StructuredConfig{
		App: config.App{Version: "v9.9.9"},
		Storage: config.Storage{
			DB: config.DB{Driver: config.DriverMemory},
			Files: config.Files{
				UploadsDir: filepath.Join(dir, "uploads"),
				PostsFile:  filepath.Join(dir, "posts.json"),
			},
		},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(storages, nil, nil, cfg, models.NewAppBuildInfo("", "", "c0ffee"), logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PlaceholderService)
	assert.NotNil(t, services.UploadService)
	assert.NotNil(t, services.Products)
	assert.NotNil(t, services.Orders)
	assert.Equal(t, models.BuildInfo{Version: "v9.9.9", Date: "N/A", Commit: "c0ffee"},
		services.AppInfoService.GetBuildInfo(context.Background()))
}

func TestNewServices_NoStorages(t *testing.T) {
	services, err := NewServices(nil, nil, nil, config.StructuredConfig{}, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, errNoStorages)
	assert.Nil(t, services)
}
