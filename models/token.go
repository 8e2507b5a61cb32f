package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose scopes a signed token to the flow it was issued for, so a
// reset token can never be replayed as an access token and vice versa.
type TokenPurpose string

const (
	PurposeAccess  TokenPurpose = "access"
	PurposeRefresh TokenPurpose = "refresh"
	PurposeReset   TokenPurpose = "reset"
)

// UserClaims is the JWT claim set carried by every token the service issues.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, iss, exp,
// iat, jti) and adds the public user identity {id, name, email}. Subject and
// UserID always hold the same value.
type UserClaims struct {
	jwt.RegisteredClaims

	// UserID duplicates the "sub" claim under the "id" key.
	UserID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// Purpose tells which flow the token belongs to.
	Purpose TokenPurpose `json:"purpose"`
}

// NewUserClaims builds the identity part of a claim set for user.
func NewUserClaims(user User, purpose TokenPurpose) UserClaims {
	return UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
		UserID:           user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Purpose:          purpose,
	}
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// VerifyTokenResponse is the body of POST /auth/token/verify. The endpoint
// always answers 200; Valid tells whether the token passed verification.
type VerifyTokenResponse struct {
	Valid   bool        `json:"valid"`
	Decoded *UserClaims `json:"decoded,omitempty"`
	Error   string      `json:"error,omitempty"`
}
