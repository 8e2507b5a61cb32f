package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/models"
)

type appInfoService struct {
	version string
	build   models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService serves build metadata. A non-blank cfg.Version overrides
// the version resolved from build.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = build.Version()
	}

	logger.Info().
		Str("version", version).
		Str("commit", build.BuildCommit()).
		Msg("app info service created")

	return &appInfoService{
		version: version,
		build:   build,
		logger:  logger,
	}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

func (s *appInfoService) GetBuildInfo(_ context.Context) models.BuildInfo {
	return models.BuildInfo{
		Version: s.version,
		Date:    s.build.BuildDate(),
		Commit:  s.build.BuildCommit(),
	}
}
