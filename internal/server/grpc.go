package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	myGRPC "github.com/MKhiriev/resourcekit/internal/handler/grpc"
	"github.com/MKhiriev/resourcekit/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: address,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = ln
	g.logger.Info().Str("address", ln.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown reports NOT_SERVING first, then waits for in-flight calls. Calls
// still running after shutdownTimeout are cut off.
func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, forcing stop")
		g.server.Stop()
	}
	if g.gRPCNetListener != nil {
		_ = g.gRPCNetListener.Close()
	}
	g.logger.Info().Msg("gRPC server Shutdown")
}
