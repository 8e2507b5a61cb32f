package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/models"
)

const (
	// AvatarField is the multipart field carrying the uploaded image.
	AvatarField = "avatar"
	// StaticPath is the URL prefix uploaded files are served under.
	StaticPath = "/static/"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type uploadService struct {
	storage   store.UploadStorage
	publicURL string
	logger    *logger.Logger
}

func NewUploadService(storage store.UploadStorage, publicURL string, logger *logger.Logger) UploadService {
	return &uploadService{storage: storage, publicURL: publicURL, logger: logger}
}

func (s *uploadService) SaveAvatar(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadedFile, error) {
	if r == nil {
		return models.UploadedFile{}, ErrMissingFile
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !allowedImageTypes[mediaType] {
		return models.UploadedFile{}, ErrUnsupportedFileType
	}

	name, size, err := s.storage.Save(ctx, AvatarField, originalName, r)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uploadService.SaveAvatar").Msg("error saving avatar")
		return models.UploadedFile{}, fmt.Errorf("error saving avatar: %w", err)
	}

	return models.UploadedFile{
		FileName: name,
		URL:      s.publicURL + StaticPath + url.PathEscape(name),
		Size:     size,
	}, nil
}

func (s *uploadService) Dir() string {
	return s.storage.Dir()
}
