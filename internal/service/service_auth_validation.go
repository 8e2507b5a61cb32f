package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resourcekit/internal/validators"
	"github.com/MKhiriev/resourcekit/models"
)

// AuthValidationService checks request bodies before they reach the
// wrapped AuthService. Failures wrap ErrInvalidDataProvided together with
// the validators error describing the offending field.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.TokenPair{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) User(ctx context.Context, userID string) (models.User, error) {
	return v.inner.User(ctx, userID)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AuthValidationService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.RequestPasswordReset(ctx, req)
}

func (v *AuthValidationService) ConfirmPasswordReset(ctx context.Context, token string, req models.PasswordResetConfirmRequest) error {
	if err := v.validate(ctx, models.TokenRequest{Token: token}); err != nil {
		return err
	}
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.ConfirmPasswordReset(ctx, token, req)
}

func (v *AuthValidationService) ParseAccessToken(ctx context.Context, token string) (models.UserClaims, error) {
	return v.inner.ParseAccessToken(ctx, token)
}

// VerifyToken is not validated: an empty token is reported as invalid by
// the inner service.
func (v *AuthValidationService) VerifyToken(ctx context.Context, req models.TokenRequest) models.VerifyTokenResponse {
	return v.inner.VerifyToken(ctx, req)
}

func (v *AuthValidationService) RefreshTokens(ctx context.Context, req models.TokenRequest) (models.TokenPair, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.TokenPair{}, err
	}
	return v.inner.RefreshTokens(ctx, req)
}

func (v *AuthValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
