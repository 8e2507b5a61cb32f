package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/internal/validators"
	"github.com/MKhiriev/resourcekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatedAuthSvc() AuthService {
	return NewAuthValidationService().Wrap(
		NewAuthService(store.NewMemoryUserRepository(), nil, testAppConfig, logger.Nop()),
	)
}

func TestAuthValidationService_Register(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{name: "missing name", req: models.RegisterRequest{Email: "ann@example.com", Password: testPassword}, wantErr: validators.ErrEmptyName},
		{name: "bad email", req: models.RegisterRequest{Name: "Ann", Email: "ann", Password: testPassword}, wantErr: validators.ErrInvalidEmail},
		{name: "weak password", req: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "password"}, wantErr: validators.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newValidatedAuthSvc().Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthValidationService_FullFlow(t *testing.T) {
	ctx := context.Background()
	svc := newValidatedAuthSvc()

	user, err := svc.Register(ctx, models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: testPassword})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: testPassword})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	pair, err := svc.Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: testPassword})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	err = svc.ChangePassword(ctx, user.ID, models.ChangePasswordRequest{OldPassword: testPassword, NewPassword: "weak"})
	assert.ErrorIs(t, err, validators.ErrWeakPassword)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, models.ChangePasswordRequest{OldPassword: testPassword, NewPassword: "N3w!password"}))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, models.LoginRequest{Email: "ann@example.com", Password: "N3w!password"})
	require.NoError(t, err)

	got, err := svc.User(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
}

func TestAuthValidationService_EmptyTokens(t *testing.T) {
	svc := newValidatedAuthSvc()

	_, err := svc.RefreshTokens(context.Background(), models.TokenRequest{})
	assert.ErrorIs(t, err, validators.ErrEmptyToken)

	err = svc.ConfirmPasswordReset(context.Background(), " ", models.PasswordResetConfirmRequest{NewPassword: "N3w!password"})
	assert.ErrorIs(t, err, validators.ErrEmptyToken)

	resp := svc.VerifyToken(context.Background(), models.TokenRequest{})
	assert.False(t, resp.Valid)
}
