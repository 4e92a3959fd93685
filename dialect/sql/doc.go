// Package sql provides the database connection wrapper and the schema
// introspector used by the generator.
//
// The [Driver] is a thin wrapper over database/sql; the concrete driver
// (go-sql-driver/mysql) is registered by the caller with a blank import.
// The [Inspector] reads table and column metadata from information_schema,
// never user data.
package sql
