package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/resourcekit/models"
	sq "github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

var usersTable = models.User{}.TableName()

var (
	documentColumns = []string{"id", "data"}
	userColumns     = []string{"id", "name", "email", "password_hash", "created_at"}
)

// ── documents ─────────────────────────────────────────────────────────────────

func buildInsertDocumentQuery(d dialect, collection, id string, data []byte) (string, []any, error) {
	query, args, err := d.builder().
		Insert(documentsTable).
		Columns("id", "collection", "data").
		Values(id, collection, string(data)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func selectDocuments(d dialect, collection string) sq.SelectBuilder {
	return d.builder().
		Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("seq")
}

func buildSelectDocumentsQuery(d dialect, collection string) (string, []any, error) {
	query, args, err := selectDocuments(d, collection).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectDocumentsWindowQuery(d dialect, collection string, skip, limit int) (string, []any, error) {
	query, args, err := selectDocuments(d, collection).
		Limit(uint64(limit)).
		Offset(uint64(skip)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountDocumentsQuery(d dialect, collection string) (string, []any, error) {
	query, args, err := d.builder().
		Select("COUNT(*)").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectDocumentQuery selects one document; forUpdate adds the
// dialect's row lock.
func buildSelectDocumentQuery(d dialect, collection, id string, forUpdate bool) (string, []any, error) {
	builder := d.builder().
		Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id})
	if forUpdate && d.lockSuffix != "" {
		builder = builder.Suffix(d.lockSuffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateDocumentQuery(d dialect, collection, id string, data []byte) (string, []any, error) {
	query, args, err := d.builder().
		Update(documentsTable).
		Set("data", string(data)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDocumentQuery(d dialect, collection, id string) (string, []any, error) {
	query, args, err := d.builder().
		Delete(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		Suffix("RETURNING id, data").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(d dialect, user models.User) (string, []any, error) {
	query, args, err := d.builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(d dialect, column, value string) (string, []any, error) {
	query, args, err := d.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePasswordQuery(d dialect, id, passwordHash string) (string, []any, error) {
	query, args, err := d.builder().
		Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// nowUTC is truncated to microseconds, the resolution of PostgreSQL
// timestamps, so values read back compare equal.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
