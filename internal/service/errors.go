package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrOldPasswordIncorrect   = errors.New("old password is incorrect")
	ErrUnknownEmail           = errors.New("user with this email does not exist")
	ErrUserNotFound           = errors.New("user not found")

	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidResetToken   = errors.New("invalid token or user does not exist")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashing     = errors.New("error hashing password")
	ErrPasswordTooLong     = errors.New("password must not be longer than 72 bytes")
	ErrSendingResetMail    = errors.New("error sending reset email")

	ErrUpstreamUnavailable = errors.New("placeholder api unavailable")
	ErrPostsUnavailable    = errors.New("posts are not loaded")
	ErrInvalidUserID       = errors.New("user id must be a number")
	ErrInvalidPostID       = errors.New("post id must be a number")
	ErrPostNotFound        = errors.New("post not found")

	ErrMissingFile         = errors.New("no file uploaded")
	ErrUnsupportedFileType = errors.New("only image/jpeg and image/png files are allowed")

	errNoStorages = errors.New("storages are required")
)
