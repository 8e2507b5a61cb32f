// Package server runs the resourcekit listeners: the chi REST router over
// HTTP and, when an address is configured, the gRPC health service.
//
// All listeners are bound before any of them serves, so a busy port fails
// startup. Cancelling the run context shuts every listener down gracefully.
package server
