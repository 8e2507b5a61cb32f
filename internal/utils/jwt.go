package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resourcekit/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidJWTParams is returned by [GenerateJWTToken] when the issuer,
// duration or sign key is missing.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// The registered claims are completed before signing:
//   - Issuer    (iss): issuer
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - ID        (jti): a random UUID, so two tokens issued within the same
//     second for the same user never collide
//
// Example usage:
//
//	signed, err := utils.GenerateJWTToken(claims, "resourcekit", time.Hour, "secret", time.Now())
func GenerateJWTToken(claims models.UserClaims, issuer string, tokenDuration time.Duration, signKey string, now time.Time) (string, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return "", ErrInvalidJWTParams
	}

	claims.Issuer = issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	claims.ID = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ParseJWTToken verifies the signature of tokenString with signKey and
// decodes its [models.UserClaims].
//
// Validation includes the HS256 signing method, the issuer (iss) claim,
// expiration (exp) against the clock given by now, and presence of the
// subject. Pass ignoreExpiration to accept tokens whose exp is in the past;
// the signature, issuer and subject are still checked.
//
// Example usage:
//
//	claims, err := utils.ParseJWTToken(raw, "secret", "resourcekit", time.Now, false)
func ParseJWTToken(tokenString, signKey, issuer string, now func() time.Time, ignoreExpiration bool) (models.UserClaims, error) {
	var claims models.UserClaims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
	}
	if ignoreExpiration {
		opts = append(opts, jwt.WithoutClaimsValidation())
	} else {
		opts = append(opts, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	}

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.UserClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if ignoreExpiration && claims.Issuer != issuer {
		return models.UserClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenInvalidIssuer)
	}
	if claims.Subject == "" {
		return models.UserClaims{}, errors.New("empty subject error")
	}

	return claims, nil
}
