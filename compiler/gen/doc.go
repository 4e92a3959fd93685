// Package gen implements the schema-to-class translation pipeline.
//
// The pipeline turns one introspected [schema.Table] into the full source
// text of a C# data class decorated with data-annotation attributes:
//
//	schema.Table
//	        ↓
//	Pascal (identifier casing)
//	        ↓
//	Map / MapColumn (native type → C# type + nullability)
//	        ↓
//	Emitter (template assembly)
//	        ↓
//	Writer (one file per table)
//
// Everything up to the Writer is pure: given identical inputs and options
// the emitter produces byte-identical output, which is what makes
// golden-file testing of the generated classes meaningful.
//
// # Attribute toggles
//
// Each data annotation ([Key], [Required], [Column], [MaxLength], [Table],
// [DatabaseGenerated]) is controlled by an independent boolean in
// [Attributes]. A disabled toggle suppresses both the annotation lines and,
// when no enabled toggle needs them, the annotation-only using directives.
//
// # Error handling
//
// Unconvertible identifiers are reported as a [NamingError]; they indicate
// malformed schema metadata and abort the run. Unknown native column types
// never fail: the mapper falls back to the string type and the emitter
// records a [Warning] for the run report.
package gen
