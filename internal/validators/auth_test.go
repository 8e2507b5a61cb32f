// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/resourcekit/models"
	"github.com/stretchr/testify/assert"
)

const strongPassword = "Str0ng!pass"

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestAuthValidator_UnsupportedType(t *testing.T) {
	v := NewAuthValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestAuthValidator_AcceptsPointers(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: strongPassword}))
	assert.NoError(t, v.Validate(ctx, &models.LoginRequest{Email: "ann@example.com", Password: "x"}))
	assert.NoError(t, v.Validate(ctx, &models.ChangePasswordRequest{OldPassword: "x", NewPassword: strongPassword}))
	assert.NoError(t, v.Validate(ctx, &models.PasswordResetRequest{Email: "ann@example.com"}))
	assert.NoError(t, v.Validate(ctx, &models.PasswordResetConfirmRequest{NewPassword: strongPassword}))
	assert.NoError(t, v.Validate(ctx, &models.TokenRequest{Token: "abc"}))
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthValidator_Register(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: strongPassword}},
		{name: "blank name", req: models.RegisterRequest{Name: "  ", Email: "ann@example.com", Password: strongPassword}, wantErr: ErrEmptyName},
		{name: "bad email", req: models.RegisterRequest{Name: "Ann", Email: "ann", Password: strongPassword}, wantErr: ErrInvalidEmail},
		{name: "display name email", req: models.RegisterRequest{Name: "Ann", Email: "Ann <ann@example.com>", Password: strongPassword}, wantErr: ErrInvalidEmail},
		{name: "weak password", req: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "password"}, wantErr: ErrWeakPassword},
		{name: "scoped to name only", req: models.RegisterRequest{Name: "Ann"}, fields: []string{FieldName}},
		{name: "scoped plain password", req: models.RegisterRequest{Password: "x"}, fields: []string{FieldPassword}},
		{name: "unknown field", req: models.RegisterRequest{}, fields: []string{"age"}, wantErr: ErrUnknownField},
	}

	v := NewAuthValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Login / password change / reset / tokens
// ---------------------------------------------------------------------------

func TestAuthValidator_Login(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "bad", Password: "x"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "ann@example.com"}), ErrEmptyPassword)
	// login never enforces strength, old accounts keep working
	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "ann@example.com", Password: "weak"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{}, "nope"), ErrUnknownField)
}

func TestAuthValidator_ChangePassword(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordRequest{NewPassword: strongPassword}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordRequest{OldPassword: "x", NewPassword: "short"}), ErrWeakPassword)
	assert.NoError(t, v.Validate(ctx, models.ChangePasswordRequest{OldPassword: "x"}, FieldOldPassword))
}

func TestAuthValidator_ResetAndTokens(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.PasswordResetRequest{Email: ""}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordResetConfirmRequest{NewPassword: "NoDigits!!"}), ErrWeakPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.TokenRequest{Token: " "}), ErrEmptyToken)
}

func TestCheckStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{password: strongPassword, ok: true},
		{password: "Aa1!aaaa", ok: true},
		{password: "Aa1!aaa", ok: false},
		{password: "aa1!aaaa", ok: false},
		{password: "AA1!AAAA", ok: false},
		{password: "Aaa!aaaa", ok: false},
		{password: "Aa1aaaaa", ok: false},
		{password: "Пароль1!", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := checkStrongPassword(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}
