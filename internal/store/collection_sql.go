package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
)

// documentCollection is the SQL implementation of [Collection]. All
// collections share the "documents" table and are told apart by its
// "collection" column; payloads are stored as JSON.
type documentCollection[T any] struct {
	db    *DB
	name  string
	newID func() string
}

// NewDocumentCollection returns the SQL-backed collection called name.
func NewDocumentCollection[T any](db *DB, name string, newID func() string) Collection[T] {
	db.logger.Debug().Str("collection", name).Msg("creating document collection")
	return &documentCollection[T]{db: db, name: name, newID: newID}
}

func (c *documentCollection[T]) Create(ctx context.Context, data T) (models.Record[T], error) {
	log := logger.FromContext(ctx)

	if err := validateRecordData(&data); err != nil {
		return models.Record[T]{}, err
	}
	raw, err := encodeRecordData(data)
	if err != nil {
		return models.Record[T]{}, err
	}

	id := c.newID()
	query, args, err := buildInsertDocumentQuery(c.db.dialect, c.name, id, raw)
	if err != nil {
		return models.Record[T]{}, err
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*documentCollection.Create").Str("collection", c.name).Msg("error inserting document")
		return models.Record[T]{}, fmt.Errorf("%w: %w", ErrExecutingStatement, c.db.dialect.classify(err))
	}

	return models.Record[T]{ID: id, Data: data}, nil
}

func (c *documentCollection[T]) FindAll(ctx context.Context) ([]models.Record[T], error) {
	query, args, err := buildSelectDocumentsQuery(c.db.dialect, c.name)
	if err != nil {
		return nil, err
	}
	return c.queryRecords(ctx, "*documentCollection.FindAll", query, args)
}

func (c *documentCollection[T]) FindWindow(ctx context.Context, skip, limit int) ([]models.Record[T], error) {
	if skip < 0 || limit <= 0 {
		return []models.Record[T]{}, nil
	}

	query, args, err := buildSelectDocumentsWindowQuery(c.db.dialect, c.name, skip, limit)
	if err != nil {
		return nil, err
	}
	return c.queryRecords(ctx, "*documentCollection.FindWindow", query, args)
}

func (c *documentCollection[T]) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountDocumentsQuery(c.db.dialect, c.name)
	if err != nil {
		return 0, err
	}

	var count int64
	if err = c.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*documentCollection.Count").Str("collection", c.name).Msg("error counting documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (c *documentCollection[T]) FindByID(ctx context.Context, id string) (models.Record[T], error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(id) {
		return models.Record[T]{}, ErrMalformedID
	}

	query, args, err := buildSelectDocumentQuery(c.db.dialect, c.name, id, false)
	if err != nil {
		return models.Record[T]{}, err
	}

	record, err := scanRecord[T](c.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			log.Err(err).Str("func", "*documentCollection.FindByID").Str("collection", c.name).Str("id", id).Msg("error selecting document")
		}
		return models.Record[T]{}, err
	}

	return record, nil
}

// Update reads, merges and writes the document inside one transaction.
// PostgreSQL locks the row with SELECT ... FOR UPDATE; SQLite serialises
// writers on its own.
func (c *documentCollection[T]) Update(ctx context.Context, id string, patch json.RawMessage) (models.Record[T], error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(id) {
		return models.Record[T]{}, ErrMalformedID
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*documentCollection.Update").Msg("error beginning transaction")
		return models.Record[T]{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSelectDocumentQuery(c.db.dialect, c.name, id, true)
	if err != nil {
		return models.Record[T]{}, err
	}

	var storedID string
	var stored []byte
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&storedID, &stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record[T]{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*documentCollection.Update").Str("id", id).Msg("error selecting document for update")
		return models.Record[T]{}, fmt.Errorf("%w: %w", ErrScanningRow, c.db.dialect.classify(err))
	}

	data, merged, err := mergePatch[T](stored, patch)
	if err != nil {
		return models.Record[T]{}, err
	}

	query, args, err = buildUpdateDocumentQuery(c.db.dialect, c.name, id, merged)
	if err != nil {
		return models.Record[T]{}, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*documentCollection.Update").Str("id", id).Msg("error updating document")
		return models.Record[T]{}, fmt.Errorf("%w: %w", ErrExecutingStatement, c.db.dialect.classify(err))
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*documentCollection.Update").Msg("error committing transaction")
		return models.Record[T]{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return models.Record[T]{ID: storedID, Data: data}, nil
}

func (c *documentCollection[T]) Delete(ctx context.Context, id string) (models.Record[T], error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(id) {
		return models.Record[T]{}, ErrMalformedID
	}

	query, args, err := buildDeleteDocumentQuery(c.db.dialect, c.name, id)
	if err != nil {
		return models.Record[T]{}, err
	}

	record, err := scanRecord[T](c.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			log.Err(err).Str("func", "*documentCollection.Delete").Str("id", id).Msg("error deleting document")
		}
		return models.Record[T]{}, err
	}

	return record, nil
}

func (c *documentCollection[T]) queryRecords(ctx context.Context, funcName, query string, args []any) ([]models.Record[T], error) {
	log := logger.FromContext(ctx)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("collection", c.name).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record[T], 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err = rows.Scan(&id, &raw); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		data, err := decodeRecordData[T](raw)
		if err != nil {
			log.Err(err).Str("func", funcName).Str("id", id).Msg("failed to decode document")
			return nil, err
		}
		records = append(records, models.Record[T]{ID: id, Data: data})
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating document rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func scanRecord[T any](row *sql.Row) (models.Record[T], error) {
	var id string
	var raw []byte
	if err := row.Scan(&id, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record[T]{}, ErrRecordNotFound
		}
		return models.Record[T]{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	data, err := decodeRecordData[T](raw)
	if err != nil {
		return models.Record[T]{}, err
	}

	return models.Record[T]{ID: id, Data: data}, nil
}
