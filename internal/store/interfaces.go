package store

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/resourcekit/models"
)

// Collection is an ordered set of records of one resource type.
//
// Records keep their insertion order: FindAll and FindWindow return them
// oldest first. Identifiers are assigned by the collection on Create.
type Collection[T any] interface {
	Create(ctx context.Context, data T) (models.Record[T], error)
	FindAll(ctx context.Context) ([]models.Record[T], error)
	// FindWindow returns at most limit records after skipping the first skip.
	FindWindow(ctx context.Context, skip, limit int) ([]models.Record[T], error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id string) (models.Record[T], error)
	// Update merges the top-level fields of patch into the stored record,
	// validates the result and stores it in a single operation.
	Update(ctx context.Context, id string, patch json.RawMessage) (models.Record[T], error)
	// Delete removes the record and returns it as it was before removal.
	Delete(ctx context.Context, id string) (models.Record[T], error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// PostsCache keeps the last batch of posts loaded from the placeholder API.
type PostsCache interface {
	Save(ctx context.Context, posts []models.Post) error
	Load(ctx context.Context) ([]models.Post, error)
}

// UploadStorage persists uploaded files under generated names.
type UploadStorage interface {
	// Save stores the content of r for the given form field and returns the
	// generated file name and its size in bytes.
	Save(ctx context.Context, field, originalName string, r io.Reader) (string, int64, error)
	// Dir is the directory the files are written to.
	Dir() string
}
