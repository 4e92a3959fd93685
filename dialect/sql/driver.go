package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Sentinel errors for connection and catalog failures.
var (
	// ErrConnection is matched by every ConnectionError.
	ErrConnection = errors.New("entigen: database connection failed")
	// ErrEmptySchema is matched by every SchemaError.
	ErrEmptySchema = errors.New("entigen: schema contains no tables")
)

// ConnectionError reports that the database is unreachable or that the
// connection was dropped mid-query.
type ConnectionError struct {
	Database string
	Cause    error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Database != "" {
		return fmt.Sprintf("entigen: connection to database %q failed: %v", e.Database, e.Cause)
	}
	return fmt.Sprintf("entigen: database connection failed: %v", e.Cause)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel error for ConnectionError.
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// NewConnectionError creates a new ConnectionError.
func NewConnectionError(database string, cause error) *ConnectionError {
	return &ConnectionError{Database: database, Cause: cause}
}

// IsConnectionError reports whether the error is a ConnectionError.
func IsConnectionError(err error) bool {
	var e *ConnectionError
	return errors.As(err, &e)
}

// SchemaError reports that the configured schema has nothing to generate
// from. It aborts the whole run.
type SchemaError struct {
	Schema string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("entigen: schema %q contains no tables", e.Schema)
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool { return target == ErrEmptySchema }

// NewSchemaError creates a new SchemaError.
func NewSchemaError(schemaName string) *SchemaError {
	return &SchemaError{Schema: schemaName}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// Driver wraps a single database/sql connection pool together with its
// dialect name. One Driver is opened per run and reused for every
// introspection query.
type Driver struct {
	db      *sql.DB
	dialect string
}

// Open opens a new connection pool for the given dialect and DSN.
// The driver named by dialect must be registered with database/sql.
func Open(dialect, dsn string) (*Driver, error) {
	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	return OpenDB(dialect, db), nil
}

// OpenDB wraps an existing database/sql.DB with a Driver.
func OpenDB(dialect string, db *sql.DB) *Driver {
	return &Driver{db: db, dialect: dialect}
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB { return d.db }

// Dialect returns the dialect name the driver was opened with.
func (d *Driver) Dialect() string { return d.dialect }

// Ping verifies the connection is usable. Failures are reported as a
// ConnectionError.
func (d *Driver) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return NewConnectionError("", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (d *Driver) Close() error { return d.db.Close() }
