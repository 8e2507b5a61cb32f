package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/service"
	"github.com/go-chi/chi/v5"
)

// maxUploadBytes bounds the multipart body of POST /api/files.
const maxUploadBytes = 8 << 20

func (h *Handler) placeholderUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.PlaceholderService.Users(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.placeholderUsers")
		return
	}
	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) placeholderUserPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PlaceholderService.UserPosts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*Handler.placeholderUserPosts")
		return
	}
	h.writeJSON(w, r, posts, http.StatusOK)
}

func (h *Handler) loadPosts(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.PlaceholderService.LoadPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.loadPosts")
		return
	}
	h.writeMessage(w, r, fmt.Sprintf("Success loading we have %d posts", count), http.StatusOK)
}

func (h *Handler) cachedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PlaceholderService.Posts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.cachedPosts")
		return
	}
	h.writeJSON(w, r, posts, http.StatusOK)
}

func (h *Handler) cachedPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PlaceholderService.Post(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "*Handler.cachedPost")
		return
	}
	h.writeJSON(w, r, post, http.StatusOK)
}

// uploadAvatar accepts a multipart form with the image in the "avatar"
// field.
func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile(service.AvatarField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.uploadAvatar").Msg("error reading multipart form")
		}
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrMissingFile, err), "*Handler.uploadAvatar")
		return
	}
	defer file.Close()

	uploaded, err := h.services.UploadService.SaveAvatar(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.writeError(w, r, err, "*Handler.uploadAvatar")
		return
	}

	logger.FromRequest(r).Info().Str("file", uploaded.FileName).Int64("size", uploaded.Size).Msg("avatar uploaded")
	h.writeJSON(w, r, uploaded, http.StatusCreated)
}

// static serves the uploads directory under /static/.
func (h *Handler) static() http.Handler {
	return http.StripPrefix(service.StaticPath, http.FileServer(http.Dir(h.services.UploadService.Dir())))
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("hello world"))
}
