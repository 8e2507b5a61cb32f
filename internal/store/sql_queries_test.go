// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/resourcekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertDocumentQuery(t *testing.T) {
	query, args, err := buildInsertDocumentQuery(postgresDialect, "products", "id-1", []byte(`{"name":"lamp"}`))
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into documents")
	require.Contains(t, query, "$3")
	require.Equal(t, []any{"id-1", "products", `{"name":"lamp"}`}, args)
}

func Test_buildSelectDocumentsQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		d           dialect
		placeholder string
	}{
		{name: "postgres", d: postgresDialect, placeholder: "$1"},
		{name: "sqlite", d: sqliteDialect, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectDocumentsQuery(tt.d, "products")
			require.NoError(t, err)

			assert.Contains(t, query, "collection = "+tt.placeholder)
			assert.True(t, strings.HasSuffix(query, "ORDER BY seq"))
			assert.Equal(t, []any{"products"}, args)
		})
	}
}

func Test_buildSelectDocumentsWindowQuery(t *testing.T) {
	query, args, err := buildSelectDocumentsWindowQuery(postgresDialect, "products", 20, 10)
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY seq")
	assert.Contains(t, query, "LIMIT 10")
	assert.Contains(t, query, "OFFSET 20")
	assert.Equal(t, []any{"products"}, args)
}

func Test_buildCountDocumentsQuery(t *testing.T) {
	query, args, err := buildCountDocumentsQuery(sqliteDialect, "orders")
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT COUNT(*) FROM documents")
	assert.Equal(t, []any{"orders"}, args)
}

func Test_buildSelectDocumentQuery_Lock(t *testing.T) {
	query, args, err := buildSelectDocumentQuery(postgresDialect, "products", "id-1", true)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query, "FOR UPDATE"))
	assert.Equal(t, []any{"products", "id-1"}, args)

	query, _, err = buildSelectDocumentQuery(postgresDialect, "products", "id-1", false)
	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")

	// sqlite has no row locks
	query, _, err = buildSelectDocumentQuery(sqliteDialect, "products", "id-1", true)
	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")
}

func Test_buildUpdateDocumentQuery(t *testing.T) {
	query, args, err := buildUpdateDocumentQuery(postgresDialect, "products", "id-1", []byte(`{}`))
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE documents SET data = $1")
	assert.Contains(t, query, "updated_at = CURRENT_TIMESTAMP")
	assert.Equal(t, []any{"{}", "products", "id-1"}, args)
}

func Test_buildDeleteDocumentQuery(t *testing.T) {
	query, args, err := buildDeleteDocumentQuery(sqliteDialect, "products", "id-1")
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM documents")
	assert.True(t, strings.HasSuffix(query, "RETURNING id, data"))
	assert.Equal(t, []any{"products", "id-1"}, args)
}

func Test_buildUserQueries(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{ID: "u-1", Name: "Ann", Email: "ann@example.com", PasswordHash: "hash", CreatedAt: created}

	query, args, err := buildInsertUserQuery(postgresDialect, user)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO users")
	assert.Equal(t, []any{"u-1", "Ann", "ann@example.com", "hash", created}, args)

	query, args, err = buildSelectUserQuery(sqliteDialect, "email", "ann@example.com")
	require.NoError(t, err)
	assert.Contains(t, query, "FROM users WHERE email = ?")
	assert.Equal(t, []any{"ann@example.com"}, args)

	query, args, err = buildUpdatePasswordQuery(postgresDialect, "u-1", "new-hash")
	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE users SET password_hash = $1 WHERE id = $2")
	assert.Equal(t, []any{"new-hash", "u-1"}, args)
}
