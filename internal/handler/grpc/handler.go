// Package grpc exposes the gRPC side of the server: the standard health
// service and server reflection.
package grpc

import (
	"context"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name the server reports health for, next to the
// overall "" status.
const ServiceName = "resourcekit"

// Handler is the root gRPC transport handler.
type Handler struct {
	// services is used to report the running version in the health status.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall status and
// [ServiceName] start as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register installs the health and reflection services on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)

	var version string
	if h.services != nil && h.services.AppInfoService != nil {
		version = h.services.AppInfoService.GetAppVersion(context.Background())
	}
	h.logger.Info().Str("version", version).Msg("gRPC services registered")
}

// Shutdown flips every status to NOT_SERVING so that clients stop routing
// new calls before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
