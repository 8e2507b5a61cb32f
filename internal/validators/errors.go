package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName     = errors.New("name is required")
	ErrInvalidEmail  = errors.New("a valid email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters long and contain a lowercase letter, an uppercase letter, a digit and a symbol")
	ErrEmptyToken    = errors.New("token is required")
)
