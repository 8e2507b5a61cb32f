package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is an open SQL connection together with the dialect rules needed to
// build queries for it and to translate its driver errors.
type DB struct {
	*sql.DB
	dialect dialect
	logger  *logger.Logger
}

// dialect captures the differences between the supported SQL backends.
type dialect struct {
	// name is the migrations dialect name.
	name string
	// placeholder is the bind parameter style of the driver.
	placeholder sq.PlaceholderFormat
	// lockSuffix is appended to row reads that precede an update inside a
	// transaction; empty when the backend locks the whole database anyway.
	lockSuffix string
	// classify maps driver errors to package sentinels.
	classify func(error) error
}

// builder returns a squirrel statement builder bound to the dialect's
// placeholder format.
func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// Migrate applies the embedded schema migrations of the connection's
// dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect.name); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect.name, err)
	}
	return nil
}
