package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/utils"
)

// Storages groups every persistence component of the server.
type Storages struct {
	UserRepository UserRepository
	PostsCache     PostsCache
	UploadStorage  UploadStorage

	db     *DB
	newID  func() string
	logger *logger.Logger

	mu          sync.Mutex
	collections map[string]any
}

// NewStorages opens the configured database, applies migrations and wires
// the repositories. The "memory" driver keeps everything in process.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	s := &Storages{
		PostsCache:    NewFilePostsCache(cfg.Files.PostsFile),
		UploadStorage: NewFileUploadStorage(cfg.Files.UploadsDir),
		newID:         utils.NewUUIDGenerator().Generate,
		logger:        log,
		collections:   make(map[string]any),
	}

	var err error
	switch cfg.DB.Driver {
	case config.DriverMemory:
		s.UserRepository = NewMemoryUserRepository()
		return s, nil
	case config.DriverPostgres:
		s.db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		s.db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = s.db.Migrate(); err != nil {
		s.db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s.UserRepository = NewUserRepository(s.db, log)
	return s, nil
}

// NewCollection returns the collection called name, creating it on first
// use. Asking for an existing name with a different record type panics.
func NewCollection[T any](s *Storages, name string) Collection[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.collections[name]; ok {
		return existing.(Collection[T])
	}

	var c Collection[T]
	if s.db != nil {
		c = NewDocumentCollection[T](s.db, name, s.newID)
	} else {
		c = NewMemoryCollection[T](s.newID)
	}
	s.collections[name] = c

	return c
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
