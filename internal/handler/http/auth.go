// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
)

// Success messages of the /auth routes.
const (
	msgRegistered      = "User registered successfully"
	msgResetLinkSent   = "Password reset link sent"
	msgPasswordReset   = "Password has been reset"
	msgPasswordChanged = "Password has been changed"
	msgLoggedOut       = "User logged out"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.register")
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.register")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user registered")
	h.writeMessage(w, r, msgRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	tokens, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	h.writeJSON(w, r, tokens, http.StatusOK)
}

func (h *Handler) user(w http.ResponseWriter, r *http.Request) {
	claims, _ := utils.GetUserClaimsFromContext(r.Context())

	user, err := h.services.AuthService.User(r.Context(), claims.UserID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.user")
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.changePassword")
		return
	}

	claims, _ := utils.GetUserClaimsFromContext(r.Context())
	if err := h.services.AuthService.ChangePassword(r.Context(), claims.UserID, req); err != nil {
		h.writeError(w, r, err, "*Handler.changePassword")
		return
	}

	h.writeMessage(w, r, msgPasswordChanged, http.StatusOK)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.requestPasswordReset")
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req); err != nil {
		h.writeError(w, r, err, "*Handler.requestPasswordReset")
		return
	}

	h.writeMessage(w, r, msgResetLinkSent, http.StatusOK)
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.writeError(w, r, errMissingToken, "*Handler.confirmPasswordReset")
		return
	}

	var req models.PasswordResetConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.confirmPasswordReset")
		return
	}

	if err := h.services.AuthService.ConfirmPasswordReset(r.Context(), token, req); err != nil {
		h.writeError(w, r, err, "*Handler.confirmPasswordReset")
		return
	}

	h.writeMessage(w, r, msgPasswordReset, http.StatusOK)
}

// verifyToken always answers 200, even for a body it cannot decode.
func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.verifyToken").Msg("undecodable body")
	}

	h.writeJSON(w, r, h.services.AuthService.VerifyToken(r.Context(), req), http.StatusOK)
}

func (h *Handler) refreshTokens(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.refreshTokens")
		return
	}

	tokens, err := h.services.AuthService.RefreshTokens(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.refreshTokens")
		return
	}

	h.writeJSON(w, r, tokens, http.StatusOK)
}

// logout only acknowledges; issued tokens stay valid until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.writeMessage(w, r, msgLoggedOut, http.StatusOK)
}
