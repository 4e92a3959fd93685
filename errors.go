package entigen

import (
	"errors"
	"fmt"
)

// ErrWriteFailed is matched by every WriteError.
var ErrWriteFailed = errors.New("entigen: write failed")

// WriteError reports a failed file write for one table. It is fatal for
// that table only: the run continues with the remaining tables and the
// failures are aggregated in the Report.
type WriteError struct {
	Table string
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("entigen: write %s for table %q: %v", e.Path, e.Table, e.Cause)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel error for WriteError.
func (e *WriteError) Is(target error) bool { return target == ErrWriteFailed }

// NewWriteError creates a new WriteError.
func NewWriteError(table, path string, cause error) *WriteError {
	return &WriteError{Table: table, Path: path, Cause: cause}
}

// IsWriteError reports whether the error is a WriteError.
func IsWriteError(err error) bool {
	var e *WriteError
	return errors.As(err, &e)
}
