package server

import (
	"context"
	"sync"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/handler"
	"github.com/MKhiriev/resourcekit/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, errMissingHandler
		}
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, logger)
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			return nil, errMissingHandler
		}
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) Run(ctx context.Context) error {
	ts := s.transports()
	if len(ts) == 0 {
		return errNoServersAreCreated
	}

	for i, t := range ts {
		if err := t.listen(); err != nil {
			// release whatever was already bound
			for _, bound := range ts[:i] {
				bound.Shutdown()
			}
			return err
		}
	}

	var wg sync.WaitGroup
	for _, t := range ts {
		wg.Add(1)
		go func(t transport) {
			defer wg.Done()
			t.RunServer()
		}(t)
	}

	<-ctx.Done()
	s.logger.Info().Msg("stop signal received, shutting down")

	for _, t := range ts {
		t.Shutdown()
	}
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
