package http

import (
	"time"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/service"
)

type Handler struct {
	services *service.Services

	verboseErrors  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		verboseErrors:  cfg.App.VerboseErrors,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
