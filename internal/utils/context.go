// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/resourcekit/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserClaimsCtxKey is the key under which the bearer middleware stores the
// verified [models.UserClaims] of the caller.
var UserClaimsCtxKey = contextKey("userClaims")

// WithUserClaims returns a copy of ctx carrying claims.
func WithUserClaims(ctx context.Context, claims models.UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsCtxKey, claims)
}

// GetUserClaimsFromContext retrieves the caller's claims from the context.
//
// Returns ok == false when no claims are stored or the stored value has an
// unexpected type.
//
// Example usage:
//
//	claims, ok := utils.GetUserClaimsFromContext(ctx)
//	if !ok {
//	    // request did not pass the bearer middleware
//	}
func GetUserClaimsFromContext(ctx context.Context) (models.UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsCtxKey).(models.UserClaims)
	return claims, ok
}
