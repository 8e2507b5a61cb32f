package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/handler"
	myGRPC "github.com/MKhiriev/resourcekit/internal/handler/grpc"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewServer(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(nil, logger.Nop())

	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{name: "nothing enabled", handlers: &handler.Handlers{}, wantErr: errNoServersAreCreated},
		{name: "http without handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":0"}, wantErr: errMissingHandler},
		{name: "grpc without handler", handlers: &handler.Handlers{}, cfg: config.Server{GRPCAddress: ":0"}, wantErr: errMissingHandler},
		{name: "grpc only", handlers: &handler.Handlers{GRPC: grpcHandler}, cfg: config.Server{GRPCAddress: "127.0.0.1:0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "hello world")
	})
	h := newHTTPServer(router, "127.0.0.1:0", logger.Nop())
	require.NoError(t, h.listen())

	done := make(chan struct{})
	go func() {
		h.RunServer()
		close(done)
	}()

	resp, err := http.Get("http://" + h.listener.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "hello world", string(body))

	h.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestGRPCServer_ServeAndShutdown(t *testing.T) {
	g := newGRPCServer(myGRPC.NewHandler(nil, logger.Nop()), "127.0.0.1:0", logger.Nop())
	require.NoError(t, g.listen())
	go g.RunServer()

	conn, err := grpc.NewClient(g.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	g.Shutdown()
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	g := newGRPCServer(myGRPC.NewHandler(nil, logger.Nop()), "127.0.0.1:0", logger.Nop())
	s := &server{gRPCServer: g, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunReturnsBindError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", logger.Nop()),
		gRPCServer: newGRPCServer(myGRPC.NewHandler(nil, logger.Nop()), busy.Addr().String(), logger.Nop()),
		logger:     logger.Nop(),
	}

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gRPC listen")
}

func TestServer_RunWithoutTransports(t *testing.T) {
	s := &server{logger: logger.Nop()}
	require.ErrorIs(t, s.Run(context.Background()), errNoServersAreCreated)
}
