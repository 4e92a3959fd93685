package gen

import (
	"strings"

	"github.com/syssam/entigen/schema"
)

// stringType is both the mapping for text columns and the fallback for
// native types with no entry. Strings are reference types in the target
// language and are never wrapped in a nullable marker.
const stringType = "string"

// typeTable is the static, total mapping from a native MySQL type name to
// its C# type. Adding support for a new native type is a one-line change
// here. The tinyint(1) boolean special case is resolved in Map before the
// lookup.
var typeTable = map[string]string{
	"bit":       "bool",
	"tinyint":   "byte",
	"smallint":  "short",
	"int":       "int",
	"bigint":    "long",
	"decimal":   "decimal",
	"float":     "float",
	"double":    "double",
	"datetime":  "DateTime",
	"date":      "DateTime",
	"timestamp": "DateTime",
	"time":      "TimeSpan",
	"char":      stringType,
	"varchar":   stringType,
	"text":      stringType,
	"longtext":  stringType,
	"json":      stringType,
}

// Map translates a native type descriptor into a C# type name. width is
// the length descriptor of the column: the display width for tinyint
// (tinyint(1) is a boolean by MySQL convention), zero when absent.
//
// wrapped reports whether the type must carry the explicit nullable-value
// marker ("?"): true when the column is nullable and the mapped type is a
// value type. known is false when the native type has no mapping entry and
// the string fallback was substituted; Map itself never fails, so newly
// introduced native types degrade to a warning instead of aborting a run.
func Map(nativeType string, width int, nullable bool) (csType string, wrapped, known bool) {
	native := strings.ToLower(nativeType)
	if native == "tinyint" && width == 1 {
		csType, known = "bool", true
	} else if csType, known = typeTable[native]; !known {
		csType = stringType
	}
	wrapped = nullable && csType != stringType
	return csType, wrapped, known
}

// MapColumn maps a column after resolving its effective nullability: a
// primary-key column is never null, regardless of the schema's stated
// nullability.
func MapColumn(c schema.Column) (csType string, wrapped, known bool) {
	return Map(c.DataType, c.MaxLength, c.Nullable && !c.PrimaryKey)
}
