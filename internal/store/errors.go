package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no record of the collection has the
	// requested identifier.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMalformedID is returned for identifiers that are not UUIDs.
	ErrMalformedID = errors.New("malformed record id")

	// ErrInvalidRecord is returned for a record payload rejected before or
	// while being persisted. Rule violations reported by the payload itself
	// are wrapped as [*models.ValidationError].
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidPatch is returned together with [ErrInvalidRecord] when an
	// update body is not a JSON object or does not decode into the record
	// type once merged.
	ErrInvalidPatch = errors.New("invalid patch")

	// ErrDuplicateKey is returned when a unique constraint rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostsNotLoaded is returned by [PostsCache.Load] before the first
	// successful Save.
	ErrPostsNotLoaded = errors.New("posts were not loaded yet")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingRecord is returned when a stored payload cannot be decoded
	// into the collection's record type.
	ErrDecodingRecord = errors.New("failed to decode stored record")
)
