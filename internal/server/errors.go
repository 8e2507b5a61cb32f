// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means the server config enables no listener.
	errNoServersAreCreated = errors.New("no listeners: HTTP and gRPC addresses are both empty")

	// errMissingHandler means an address is configured for a transport whose
	// handler was not built.
	errMissingHandler = errors.New("handler for enabled transport is missing")
)
