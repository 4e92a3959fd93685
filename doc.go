// Package entigen generates C# entity classes from a MySQL database
// schema.
//
// A run is configured once (see [config.Config]), opens a single database
// connection, introspects the configured schema through
// information_schema, and emits one annotated class file per table:
//
//	cfg, err := config.Load("entigen.yaml")
//	if err != nil {
//	    return err
//	}
//	report, err := entigen.New(cfg).Run(ctx)
//
// Tables are processed strictly sequentially, in the order the
// introspector returns them. Fatal errors (configuration, connection,
// empty schema, unconvertible identifiers) abort the run; per-table
// problems (zero-column tables, unknown column types, write failures) are
// collected into the [Report] so one bad table does not swallow the rest
// of the output. Files written before an abort remain on disk.
package entigen
