package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityNotFound is returned when no identity matches the requested
	// storage key or external id.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrSessionNotFound is returned when no unexpired session is stored
	// under the requested token hash.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrUnsupportedDSN is returned when the configured DSN does not select
	// any supported SQL dialect.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
