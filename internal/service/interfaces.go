package service

import (
	"context"
	"io"

	"github.com/MKhiriev/resourcekit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the account flows behind the /auth routes.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error)
	User(ctx context.Context, userID string) (models.User, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error
	ConfirmPasswordReset(ctx context.Context, token string, req models.PasswordResetConfirmRequest) error

	// ParseAccessToken verifies a bearer token and returns its claims.
	ParseAccessToken(ctx context.Context, token string) (models.UserClaims, error)
	// VerifyToken never fails; the verdict is in the response.
	VerifyToken(ctx context.Context, req models.TokenRequest) models.VerifyTokenResponse
	// RefreshTokens accepts a refresh or access token with a valid
	// signature, expired or not, and issues a new pair for its subject.
	RefreshTokens(ctx context.Context, req models.TokenRequest) (models.TokenPair, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PlaceholderService backs the /api proxy routes.
type PlaceholderService interface {
	// Users returns the first users of the upstream.
	Users(ctx context.Context) ([]models.PlaceholderUser, error)
	// UserPosts returns the upstream posts of the user whose numeric id is
	// given as text.
	UserPosts(ctx context.Context, userID string) ([]models.Post, error)
	// LoadPosts refreshes the posts cache and returns how many posts it
	// now holds.
	LoadPosts(ctx context.Context) (int, error)
	Posts(ctx context.Context) ([]models.Post, error)
	Post(ctx context.Context, id string) (models.Post, error)
}

type UploadService interface {
	// SaveAvatar stores an uploaded image. contentType is the type declared
	// by the client for the file part.
	SaveAvatar(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadedFile, error)
	// Dir is the directory served under /static.
	Dir() string
}

// AppInfoService reports what is running.
type AppInfoService interface {
	// GetAppVersion returns the configured version, falling back to the
	// version the binary was built with.
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
