// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when neither
// SERVER_ADDRESS nor SERVER_GRPC_ADDRESS is configured, leaving the process
// with no REST router and no health service to serve.
var errNoHandlersAreCreated = errors.New("no transport handlers: neither HTTP nor gRPC address is configured")
