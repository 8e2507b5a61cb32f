package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/resourcekit/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a new account.
	FieldName = "name"

	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword requires a non-empty password (login).
	FieldPassword = "password"

	// FieldStrongPassword requires a strong password (registration).
	FieldStrongPassword = "strong_password"

	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
	FieldToken       = "token"
)

// MinPasswordLength is the shortest password accepted for new credentials.
const MinPasswordLength = 8

// AuthValidator checks the request bodies of the /auth routes.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.PasswordResetRequest:
		return checkEmail(value.Email)
	case *models.PasswordResetRequest:
		return checkEmail(value.Email)

	case models.PasswordResetConfirmRequest:
		return checkStrongPassword(value.NewPassword)
	case *models.PasswordResetConfirmRequest:
		return checkStrongPassword(value.NewPassword)

	case models.TokenRequest:
		return checkToken(value.Token)
	case *models.TokenRequest:
		return checkToken(value.Token)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldStrongPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				err = ErrEmptyName
			}
		case FieldEmail:
			err = checkEmail(req.Email)
		case FieldPassword:
			if req.Password == "" {
				err = ErrEmptyPassword
			}
		case FieldStrongPassword:
			err = checkStrongPassword(req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *AuthValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if req.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if err := checkStrongPassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkEmail accepts a bare RFC 5322 address ("ann@example.com"); display
// names ("Ann <ann@example.com>") are rejected.
func checkEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// checkStrongPassword requires MinPasswordLength characters with at least
// one lowercase letter, uppercase letter, digit and symbol.
func checkStrongPassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrWeakPassword
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	if !lower || !upper || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}

func checkToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}
	return nil
}
