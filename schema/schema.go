package schema

import "fmt"

// Column describes a single table column as reported by the metadata catalog.
// All names and type descriptors keep their raw, schema-cased form.
type Column struct {
	// Name is the raw column name (e.g. "user_id").
	Name string

	// DataType is the lower-cased native type name without length or
	// modifiers (e.g. "varchar", "tinyint").
	DataType string

	// Nullable reports the schema's stated nullability. The effective
	// nullability of a primary-key column is always false; that resolution
	// happens in the type mapper, not here.
	Nullable bool

	// PrimaryKey reports whether the column is part of the primary key.
	PrimaryKey bool

	// AutoIncrement reports whether the column value is database-generated.
	AutoIncrement bool

	// MaxLength is the character length for text types, or the display
	// width for tinyint (the "1" in tinyint(1)). Zero when the type
	// carries no length.
	MaxLength int

	// Precision and Scale describe numeric types. Zero when not numeric.
	Precision int
	Scale     int

	// Ordinal is the 1-based left-to-right position within the table.
	Ordinal int
}

// Table is an ordered set of columns under a raw, schema-cased table name.
type Table struct {
	Name    string
	Columns []Column
}

// Validate checks the structural invariants of an introspected table:
// a non-empty name and strictly increasing, unique ordinal positions.
// An empty column set is valid here; the generator reports and skips
// such tables instead of failing.
func (t Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("schema: table with empty name")
	}
	prev := 0
	for _, c := range t.Columns {
		if c.Name == "" {
			return fmt.Errorf("schema: table %q: column with empty name", t.Name)
		}
		if c.Ordinal <= prev {
			return fmt.Errorf("schema: table %q: column %q ordinal %d not strictly increasing", t.Name, c.Name, c.Ordinal)
		}
		prev = c.Ordinal
	}
	return nil
}
