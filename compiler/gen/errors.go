package gen

import (
	"errors"
	"fmt"
)

// ErrInvalidName is matched by every NamingError.
var ErrInvalidName = errors.New("entigen: invalid identifier")

// NamingError reports an identifier that cannot be converted into a class
// or property name. It is fatal: such an identifier means the schema
// metadata itself is malformed.
type NamingError struct {
	Identifier string
	Message    string
}

// Error implements the error interface.
func (e *NamingError) Error() string {
	return fmt.Sprintf("entigen: cannot convert identifier %q: %s", e.Identifier, e.Message)
}

// Is reports whether the target matches the sentinel error for NamingError.
func (e *NamingError) Is(target error) bool { return target == ErrInvalidName }

// NewNamingError creates a new NamingError.
func NewNamingError(identifier, message string) *NamingError {
	return &NamingError{Identifier: identifier, Message: message}
}

// IsNamingError reports whether the error is a NamingError.
func IsNamingError(err error) bool {
	var e *NamingError
	return errors.As(err, &e)
}

// Warning reports a non-fatal condition encountered while emitting a
// class. Warnings are collected into the run report instead of aborting
// the table.
type Warning struct {
	Table   string
	Column  string
	Message string
}

// String returns a single-line rendering for logs and summaries.
func (w Warning) String() string {
	if w.Column != "" {
		return fmt.Sprintf("%s.%s: %s", w.Table, w.Column, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Table, w.Message)
}
