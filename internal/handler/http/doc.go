// Package http implements the REST transport of resourcekit.
//
// It wires the route table (resource routers for /products, /orders and
// /ping, the /auth account routes, the /api placeholder proxy and static
// uploads) and the cross-cutting middleware: trace ids, access logging,
// bearer authentication and the error mapping shared by all handlers.
package http
