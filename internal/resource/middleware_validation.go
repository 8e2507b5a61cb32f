package resource

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/validation"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies read by body validation and the
// controller.
const maxBodyBytes = 1 << 20

// validateQuery checks the query string. Repeated keys are validated by
// their first value.
func validateQuery(schema *validation.Schema) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values := make(map[string]string)
			for k, v := range r.URL.Query() {
				if len(v) > 0 {
					values[k] = v[0]
				}
			}

			if err := schema.ValidateStrings(validation.LocationQuery, values); err != nil {
				rejectInvalid(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// validateBody checks the JSON body and hands an identical body on to the
// next handler.
func validateBody(schema *validation.Schema) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := readBody(w, r)
			if err != nil {
				rejectInvalid(w, r, err)
				return
			}

			if err = schema.ValidateJSON(validation.LocationBody, data); err != nil {
				rejectInvalid(w, r, err)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(data))
			next.ServeHTTP(w, r)
		})
	}
}

// validateParams checks the path parameters matched by the route.
func validateParams(schema *validation.Schema) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values := make(map[string]string)
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				for i, key := range rctx.URLParams.Keys {
					if key == "*" {
						continue
					}
					values[key] = rctx.URLParams.Values[i]
				}
			}

			if err := schema.ValidateStrings(validation.LocationParams, values); err != nil {
				rejectInvalid(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rejectInvalid answers 400 with the first violation only.
func rejectInvalid(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Str("func", "resource.rejectInvalid").Msg("request failed validation")

	var verr *validation.Error
	if errors.As(err, &verr) {
		writeError(w, r, http.StatusBadRequest, verr.Error(), nil, false)
		return
	}
	writeError(w, r, http.StatusBadRequest, err.Error(), nil, false)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, errEmptyBody
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, errUnreadableBody
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyBody
	}
	return data, nil
}
