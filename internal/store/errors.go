package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDriverNotFound is returned when an update, delete or lookup targets
	// a driver_id that does not exist in the database.
	ErrDriverNotFound = errors.New("driver was not found")

	// ErrConstraintViolation is returned when the database rejects a write
	// because of an integrity constraint (not null, check, unique, ...).
	ErrConstraintViolation = errors.New("driver violates a database constraint")

	// ErrUnsupportedDialect is returned by the storage factory for a dialect
	// other than postgres or sqlite.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")

	// ErrUnsupportedBackend is returned by the storage factory for a backend
	// other than sql or orm, or for orm over a dialect gorm is not wired for.
	ErrUnsupportedBackend = errors.New("unsupported persistence backend")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan driver row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan driver rows")
)
