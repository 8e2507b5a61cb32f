package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/service"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/internal/validators"
	"github.com/MKhiriev/resourcekit/models"
)

const (
	msgInvalidJSON   = "Invalid JSON was passed"
	msgNotFound      = "Not Found"
	msgInvalidToken  = "Invalid token"
	msgInternalError = "Internal Server Error"
)

// errorMapping is the response for one class of errors. An empty message
// answers with the text of target itself.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order, the first match wins. Validator errors
// come before service.ErrInvalidDataProvided, which wraps them.
var errorMappings = []errorMapping{
	{target: validators.ErrEmptyToken, status: http.StatusBadRequest, message: msgInvalidToken},
	{target: validators.ErrEmptyName, status: http.StatusBadRequest},
	{target: validators.ErrInvalidEmail, status: http.StatusBadRequest},
	{target: validators.ErrEmptyPassword, status: http.StatusBadRequest},
	{target: validators.ErrWeakPassword, status: http.StatusBadRequest},
	{target: service.ErrPasswordTooLong, status: http.StatusBadRequest},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, message: "Invalid data provided"},
	{target: errMalformedJSON, status: http.StatusBadRequest, message: msgInvalidJSON},
	{target: utils.ErrEmptyBody, status: http.StatusBadRequest, message: msgInvalidJSON},

	{target: service.ErrEmailAlreadyRegistered, status: http.StatusBadRequest, message: "Email already registered"},
	{target: service.ErrInvalidCredentials, status: http.StatusBadRequest, message: "Invalid email or password"},
	{target: service.ErrOldPasswordIncorrect, status: http.StatusBadRequest, message: "Old password is incorrect"},
	{target: service.ErrUnknownEmail, status: http.StatusBadRequest, message: "User with this email does not exist"},
	{target: service.ErrInvalidResetToken, status: http.StatusBadRequest, message: "Invalid token or user does not exist"},
	{target: errMissingToken, status: http.StatusBadRequest, message: "Invalid token or user does not exist"},
	{target: service.ErrInvalidToken, status: http.StatusBadRequest, message: msgInvalidToken},
	{target: service.ErrUserNotFound, status: http.StatusNotFound, message: "User not found"},

	{target: service.ErrInvalidUserID, status: http.StatusBadRequest},
	{target: service.ErrInvalidPostID, status: http.StatusBadRequest},
	{target: service.ErrUpstreamUnavailable, status: http.StatusBadRequest, message: msgNotFound},
	{target: service.ErrPostsUnavailable, status: http.StatusBadRequest, message: msgNotFound},
	{target: service.ErrPostNotFound, status: http.StatusBadRequest, message: msgNotFound},

	{target: service.ErrMissingFile, status: http.StatusBadRequest},
	{target: service.ErrUnsupportedFileType, status: http.StatusBadRequest},
}

// statusFromError maps err to a response status and a client-facing
// message. Unknown errors are 500.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, m.target.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err and answers with its mapped status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	resp := models.ErrorResponse{Error: message}
	if h.verboseErrors {
		resp.Details = err.Error()
	}
	h.writeJSON(w, r, resp, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	h.writeJSON(w, r, models.MessageResponse{Message: message}, status)
}

// decodeJSON decodes the request body into v. A missing body is
// utils.ErrEmptyBody, anything else that fails is errMalformedJSON.
func decodeJSON(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r, v); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", errMalformedJSON, err)
	}
	return nil
}
