package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "Ann", "ann@example.com", "hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "hash", created.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@example.com"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@example.com"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUserByEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE email = \\$1").
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(testID1, "Ann", "ann@example.com", "hash", created))

	user, err := repo.FindUserByEmail(context.Background(), "ann@example.com")

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: testID1, Name: "Ann", Email: "ann@example.com", PasswordHash: "hash", CreatedAt: created}, user)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByEmail_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("timeout"))

	_, err := repo.FindUserByEmail(context.Background(), "ann@example.com")

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs(testID1).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(testID1, "Ann", "ann@example.com", "hash", time.Now()))

	user, err := repo.FindUserByID(context.Background(), testID1)

	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
}

func TestFindUserByID_MalformedNeverHitsDB(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	_, err := repo.FindUserByID(context.Background(), "7")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET password_hash = \\$1 WHERE id = \\$2").
		WithArgs("new-hash", testID1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePassword(context.Background(), testID1, "new-hash"))
}

func TestUpdatePassword_NoRows(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), testID1, "new-hash")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	created, err := repo.CreateUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Name: "Other", Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	byEmail, err := repo.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	require.NoError(t, repo.UpdatePassword(ctx, created.ID, "h2"))
	byID, err := repo.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "h2", byID.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "missing", "h"), ErrNoUserWasFound)
	_, err = repo.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
