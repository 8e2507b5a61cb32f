package store

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/resourcekit/internal/logger"
)

type fileUploadStorage struct {
	dir string
	now func() time.Time
}

// NewFileUploadStorage returns an [UploadStorage] writing into dir, which
// is created on demand.
func NewFileUploadStorage(dir string) UploadStorage {
	return &fileUploadStorage{dir: dir, now: time.Now}
}

func (s *fileUploadStorage) Dir() string {
	return s.dir
}

// Save writes r to "<field>-<unix millis>-<random><ext>", where ext is the
// lowercased extension of originalName.
func (s *fileUploadStorage) Save(ctx context.Context, field, originalName string, r io.Reader) (string, int64, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("error creating uploads dir: %w", err)
	}

	name := uploadFileName(field, originalName, s.now())
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("error creating upload file: %w", err)
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*fileUploadStorage.Save").Str("file", name).Msg("error writing upload")
		os.Remove(filepath.Join(s.dir, name))
		return "", 0, fmt.Errorf("error writing upload file: %w", err)
	}

	return name, size, nil
}

func uploadFileName(field, originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%s-%d-%d%s", field, now.UnixMilli(), rand.Intn(1e9), ext)
}
