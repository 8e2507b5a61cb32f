package handler

import (
	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/handler/grpc"
	"github.com/MKhiriev/resourcekit/internal/handler/http"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/service"
)

// Handlers groups the transport handlers that are enabled by configuration.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
