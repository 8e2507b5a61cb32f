package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"time"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/mailer"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
	"golang.org/x/crypto/bcrypt"
)

// resetConfirmPath is the route the reset link in the mail points to.
const resetConfirmPath = "/auth/password/reset/confirm"

// tokenKey is the signing secret and lifetime of one token purpose.
type tokenKey struct {
	signKey  string
	duration time.Duration
}

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, password changes and
// the JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	userRepository store.UserRepository
	mailer         mailer.Mailer

	// keys holds one signing key and lifetime per token purpose. Each
	// purpose has its own key, so a token can never be replayed in
	// another flow.
	keys map[models.TokenPurpose]tokenKey

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// publicURL prefixes the link sent in reset mails.
	publicURL  string
	bcryptCost int

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Mailer and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mailer mailer.Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         mailer,
		keys: map[models.TokenPurpose]tokenKey{
			models.PurposeAccess:  {signKey: cfg.AccessTokenKey, duration: cfg.AccessTokenDuration},
			models.PurposeRefresh: {signKey: cfg.RefreshTokenKey, duration: cfg.RefreshTokenDuration},
			models.PurposeReset:   {signKey: cfg.ResetTokenKey, duration: cfg.ResetTokenDuration},
		},
		tokenIssuer: cfg.TokenIssuer,
		publicURL:   cfg.PublicURL,
		bcryptCost:  cfg.BcryptCost,
		now:         time.Now,
		logger:      logger,
	}
}

// Register creates a new account with a bcrypt hash of req.Password.
//
// Returns the persisted user or:
//   - ErrEmailAlreadyRegistered if the email is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "*authService.Register").Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues an access and a refresh token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("id", user.ID).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return a.issuePair(models.NewUserClaims(user, ""))
}

func (a *authService) User(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	user, err := a.User(ctx, userID)
	if err != nil {
		return err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrOldPasswordIncorrect
	}

	return a.setPassword(ctx, user.ID, req.NewPassword)
}

// RequestPasswordReset mails a link carrying a reset token to the owner of
// req.Email.
func (a *authService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUnknownEmail
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := a.issue(models.NewUserClaims(user, models.PurposeReset))
	if err != nil {
		return err
	}

	link := a.publicURL + resetConfirmPath + "?token=" + url.QueryEscape(token)
	err = a.mailer.Send(ctx, mailer.Message{
		To:      user.Email,
		Subject: "Password Reset",
		HTML:    fmt.Sprintf(`<div><p>Click <a href="%s">here</a> to reset your password</p></div>`, html.EscapeString(link)),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Str("id", user.ID).Msg("reset mail was not sent")
		return fmt.Errorf("%w: %w", ErrSendingResetMail, err)
	}

	return nil
}

// ConfirmPasswordReset sets a new password for the subject of a reset
// token.
func (a *authService) ConfirmPasswordReset(ctx context.Context, token string, req models.PasswordResetConfirmRequest) error {
	claims, err := a.parse(token, models.PurposeReset, false)
	if err != nil {
		return ErrInvalidResetToken
	}

	user, err := a.User(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	return a.setPassword(ctx, user.ID, req.NewPassword)
}

func (a *authService) ParseAccessToken(ctx context.Context, token string) (models.UserClaims, error) {
	claims, err := a.parse(token, models.PurposeAccess, false)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseAccessToken").Msg("access token rejected")
		return models.UserClaims{}, ErrInvalidToken
	}
	return claims, nil
}

func (a *authService) VerifyToken(ctx context.Context, req models.TokenRequest) models.VerifyTokenResponse {
	claims, err := a.ParseAccessToken(ctx, req.Token)
	if err != nil {
		return models.VerifyTokenResponse{Valid: false, Error: "Invalid token"}
	}
	return models.VerifyTokenResponse{Valid: true, Decoded: &claims}
}

func (a *authService) RefreshTokens(ctx context.Context, req models.TokenRequest) (models.TokenPair, error) {
	claims, err := a.parse(req.Token, models.PurposeRefresh, true)
	if err != nil {
		claims, err = a.parse(req.Token, models.PurposeAccess, true)
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.RefreshTokens").Msg("refresh token rejected")
		return models.TokenPair{}, ErrInvalidToken
	}

	identity := models.UserClaims{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
	}
	identity.Subject = claims.Subject

	return a.issuePair(identity)
}

// issuePair signs an access and a refresh token for the same identity.
func (a *authService) issuePair(identity models.UserClaims) (models.TokenPair, error) {
	identity.Purpose = models.PurposeAccess
	access, err := a.issue(identity)
	if err != nil {
		return models.TokenPair{}, err
	}

	identity.Purpose = models.PurposeRefresh
	refresh, err := a.issue(identity)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *authService) issue(claims models.UserClaims) (string, error) {
	key := a.keys[claims.Purpose]
	token, err := utils.GenerateJWTToken(claims, a.tokenIssuer, key.duration, key.signKey, a.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// parse verifies token with the key of purpose and checks the purpose
// claim.
func (a *authService) parse(token string, purpose models.TokenPurpose, ignoreExpiration bool) (models.UserClaims, error) {
	key, ok := a.keys[purpose]
	if !ok || key.signKey == "" {
		return models.UserClaims{}, ErrInvalidToken
	}

	claims, err := utils.ParseJWTToken(token, key.signKey, a.tokenIssuer, a.now, ignoreExpiration)
	if err != nil {
		return models.UserClaims{}, err
	}
	if claims.Purpose != purpose {
		return models.UserClaims{}, fmt.Errorf("%w: token purpose is %q", ErrInvalidToken, claims.Purpose)
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}

	return claims, nil
}

func (a *authService) setPassword(ctx context.Context, userID, password string) error {
	hash, err := a.hashPassword(password)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("password update failed: %w", err)
	}
	return nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	return string(hash), nil
}
