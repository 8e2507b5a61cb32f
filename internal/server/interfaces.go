package server

import "context"

// Server runs every enabled transport until its context is cancelled.
type Server interface {
	// Run binds all listeners, serves until ctx is done and then shuts the
	// transports down gracefully. A bind failure is returned immediately.
	Run(ctx context.Context) error
}

// transport is the lifecycle of a single listener managed by [Server].
type transport interface {
	// listen binds the configured address without serving yet.
	listen() error

	// RunServer serves on the bound listener and blocks until the transport
	// stops.
	RunServer()

	// Shutdown gracefully stops the transport and frees associated resources.
	Shutdown()
}
