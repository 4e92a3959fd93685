// Package schema holds the value types produced by database introspection.
//
// A [Table] is the unit of work for the generator: it carries the raw,
// schema-cased table name and its columns in ordinal order. Values are
// created per introspection call, consumed by the emitter, and discarded;
// nothing in this package touches the database.
package schema
