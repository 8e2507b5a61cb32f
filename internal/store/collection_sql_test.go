package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testID1 = "0190d5f6-6b1e-7c2d-8e3f-0a1b2c3d4e01"
	testID2 = "0190d5f6-6b1e-7c2d-8e3f-0a1b2c3d4e02"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, dialect: postgresDialect, logger: logger.Nop()}, mock
}

func newTestProducts(t *testing.T) (Collection[models.Product], sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	ids := []string{testID1, testID2}
	next := 0
	newID := func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}
	return NewDocumentCollection[models.Product](db, "products", newID), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestDocumentCollection_Create_Success(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(testID1, "products", `{"name":"lamp","price":12.5}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	record, err := products.Create(context.Background(), models.Product{Name: "lamp", Price: 12.5})

	require.NoError(t, err)
	assert.Equal(t, testID1, record.ID)
	assert.Equal(t, "lamp", record.Data.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentCollection_Create_InvalidNeverHitsDB(t *testing.T) {
	products, mock := newTestProducts(t)

	_, err := products.Create(context.Background(), models.Product{Name: "lamp", Price: -1})

	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.ErrorIs(t, err, models.ErrNegativePrice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentCollection_Create_DuplicateKey(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := products.Create(context.Background(), models.Product{Name: "lamp"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── FindAll / FindWindow / Count ──────────────────────────────────────────────

func TestDocumentCollection_FindAll(t *testing.T) {
	products, mock := newTestProducts(t)

	rows := sqlmock.NewRows([]string{"id", "data"}).
		AddRow(testID1, []byte(`{"name":"lamp","price":1}`)).
		AddRow(testID2, []byte(`{"name":"desk","price":2}`))
	mock.ExpectQuery("SELECT id, data FROM documents WHERE collection = \\$1 ORDER BY seq").
		WithArgs("products").
		WillReturnRows(rows)

	records, err := products.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, testID1, records[0].ID)
	assert.Equal(t, "desk", records[1].Data.Name)
}

func TestDocumentCollection_FindAll_EmptyIsNotNil(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("SELECT id, data FROM documents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}))

	records, err := products.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDocumentCollection_FindAll_QueryError(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("SELECT id, data FROM documents").WillReturnError(errors.New("boom"))

	_, err := products.FindAll(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDocumentCollection_FindAll_CorruptDocument(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("SELECT id, data FROM documents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).AddRow(testID1, []byte(`{"price":"free"}`)))

	_, err := products.FindAll(context.Background())

	assert.ErrorIs(t, err, ErrDecodingRecord)
}

func TestDocumentCollection_FindWindow(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("ORDER BY seq LIMIT 10 OFFSET 20").
		WithArgs("products").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).AddRow(testID1, []byte(`{"name":"lamp","price":1}`)))

	records, err := products.FindWindow(context.Background(), 20, 10)

	require.NoError(t, err)
	assert.Len(t, records, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentCollection_FindWindow_NonPositiveLimit(t *testing.T) {
	products, mock := newTestProducts(t)

	records, err := products.FindWindow(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Empty(t, records)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentCollection_Count(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM documents").
		WithArgs("products").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := products.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

// ── FindByID ──────────────────────────────────────────────────────────────────

func TestDocumentCollection_FindByID(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("SELECT id, data FROM documents WHERE collection = \\$1 AND id = \\$2").
		WithArgs("products", testID1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).AddRow(testID1, []byte(`{"name":"lamp","price":3}`)))

	record, err := products.FindByID(context.Background(), testID1)

	require.NoError(t, err)
	assert.Equal(t, models.Record[models.Product]{ID: testID1, Data: models.Product{Name: "lamp", Price: 3}}, record)
}

func TestDocumentCollection_FindByID_NotFound(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("SELECT id, data FROM documents").WillReturnError(sql.ErrNoRows)

	_, err := products.FindByID(context.Background(), testID1)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDocumentCollection_MalformedIDNeverHitsDB(t *testing.T) {
	products, mock := newTestProducts(t)
	ctx := context.Background()

	_, err := products.FindByID(ctx, "42")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = products.Update(ctx, "42", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = products.Delete(ctx, "42")
	assert.ErrorIs(t, err, ErrMalformedID)

	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestDocumentCollection_Update_MergesInTransaction(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, data FROM documents WHERE collection = \\$1 AND id = \\$2 FOR UPDATE").
		WithArgs("products", testID1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).AddRow(testID1, []byte(`{"name":"lamp","price":3}`)))
	mock.ExpectExec("UPDATE documents SET data = \\$1").
		WithArgs(`{"name":"lamp","price":5}`, "products", testID1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	record, err := products.Update(context.Background(), testID1, json.RawMessage(`{"price":5,"id":"ignored"}`))

	require.NoError(t, err)
	assert.Equal(t, testID1, record.ID)
	assert.Equal(t, models.Product{Name: "lamp", Price: 5}, record.Data)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentCollection_Update_NotFound(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := products.Update(context.Background(), testID1, json.RawMessage(`{"price":5}`))

	assert.ErrorIs(t, err, ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentCollection_Update_InvalidRollsBack(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).AddRow(testID1, []byte(`{"name":"lamp","price":3}`)))
	mock.ExpectRollback()

	_, err := products.Update(context.Background(), testID1, json.RawMessage(`{"price":-5}`))

	assert.ErrorIs(t, err, ErrInvalidRecord)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentCollection_Update_BeginError(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := products.Update(context.Background(), testID1, json.RawMessage(`{}`))

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestDocumentCollection_Update_CommitError(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).AddRow(testID1, []byte(`{"name":"lamp","price":3}`)))
	mock.ExpectExec("UPDATE documents").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	_, err := products.Update(context.Background(), testID1, json.RawMessage(`{"name":"desk"}`))

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDocumentCollection_Delete(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("DELETE FROM documents WHERE collection = \\$1 AND id = \\$2 RETURNING id, data").
		WithArgs("products", testID1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).AddRow(testID1, []byte(`{"name":"lamp","price":3}`)))

	record, err := products.Delete(context.Background(), testID1)

	require.NoError(t, err)
	assert.Equal(t, "lamp", record.Data.Name)
}

func TestDocumentCollection_Delete_NotFound(t *testing.T) {
	products, mock := newTestProducts(t)

	mock.ExpectQuery("DELETE FROM documents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data"}))

	_, err := products.Delete(context.Background(), testID1)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// ── error classification ──────────────────────────────────────────────────────

func TestClassifyPostgresError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: ErrDuplicateKey},
		{name: "bad text", err: pgError(pgerrcode.InvalidTextRepresentation), want: ErrMalformedID},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), want: ErrInvalidRecord},
		{name: "check", err: pgError(pgerrcode.CheckViolation), want: ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyPostgresError(tt.err), tt.want)
		})
	}

	other := errors.New("other")
	assert.Equal(t, other, classifyPostgresError(other))
	assert.Equal(t, "", postgresError(other))
}
