// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/logger"
)

// notFound is registered as the router's MethodNotAllowed handler. A verb
// that is not served on a known path is answered like an unknown path, with
// the router's plain-text 404, so callers cannot tell the route exists.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "*Handler.notFound").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served on this path")
	http.NotFound(w, r)
}
