package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
)

const (
	msgAccessDenied    = "Access Denied"
	msgInvalidBearer   = "Invalid Token"
	authorizationKey   = "Authorization"
	bearerSchemePrefix = "Bearer"
)

// withAuth enforces a valid access token.
//
// A request without a bearer token is answered 401 "Access Denied". A token
// that fails verification, expired ones included, is answered 400
// "Invalid Token". On success the verified claims are stored in the request
// context, see [utils.GetUserClaimsFromContext].
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get(authorizationKey))
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.withAuth").Msg("no bearer token")
			h.writeJSON(w, r, models.ErrorResponse{Error: msgAccessDenied}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.withAuth").Msg("bearer token rejected")
			h.writeJSON(w, r, models.ErrorResponse{Error: msgInvalidBearer}, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserClaims(ctx, claims)))
	})
}

// getTokenFromAuthHeader extracts the token of a "Bearer <token>" header
// value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerSchemePrefix) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
